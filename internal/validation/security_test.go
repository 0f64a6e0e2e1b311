package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateArgument(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		wantErr bool
	}{
		{name: "valid argument", arg: "-g", wantErr: false},
		{name: "valid relative path", arg: "./classes", wantErr: false},
		{name: "valid absolute path", arg: "/usr/lib/jvm/lib", wantErr: false},
		{name: "command injection semicolon", arg: "Main.java; rm -rf /", wantErr: true},
		{name: "command injection pipe", arg: "Main | cat /etc/passwd", wantErr: true},
		{name: "command injection backtick", arg: "Main`whoami`", wantErr: true},
		{name: "command substitution", arg: "$(id)", wantErr: true},
		{name: "null byte", arg: "Main\x00.java", wantErr: true},
		{name: "line break", arg: "Main\nrm", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateArgument(tt.arg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateCommand(t *testing.T) {
	allowed := map[string]bool{"javac": true, "java": true}

	tests := []struct {
		name    string
		command string
		allowed map[string]bool
		wantErr bool
	}{
		{name: "allowed command", command: "javac", allowed: allowed},
		{name: "allowed command by absolute path", command: "/usr/bin/java", allowed: allowed},
		{name: "any command without allowlist", command: "kotlinc", allowed: nil},
		{name: "not in allowlist", command: "rm", allowed: allowed, wantErr: true},
		{name: "empty command", command: "", allowed: nil, wantErr: true},
		{name: "whitespace only", command: "  ", allowed: nil, wantErr: true},
		{name: "command with arguments", command: "javac -g", allowed: nil, wantErr: true},
		{name: "injection in name", command: "javac;rm", allowed: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCommand(tt.command, tt.allowed)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateExtension(t *testing.T) {
	valid := []string{".expresso", ".java", ".class", ".kt"}
	for _, ext := range valid {
		assert.NoError(t, ValidateExtension(ext), ext)
	}

	invalid := []string{"", ".", "expresso", ".tar.gz", "./x", ".a b"}
	for _, ext := range invalid {
		assert.Error(t, ValidateExtension(ext), ext)
	}
}

func TestValidatePath(t *testing.T) {
	assert.NoError(t, ValidatePath("src/main/resources/template"))
	assert.NoError(t, ValidatePath("/tmp/templates"))
	assert.NoError(t, ValidatePath("../shared/templates"))

	assert.Error(t, ValidatePath(""))
	assert.Error(t, ValidatePath("templates;rm -rf /"))
	assert.Error(t, ValidatePath("templates\x00"))
}

func TestValidateIdentifier(t *testing.T) {
	for _, s := range []string{"HelloWorld", "_tmp", "Main2", "a"} {
		assert.NoError(t, ValidateIdentifier(s), s)
	}

	for _, s := range []string{"", "2fast", "Hello World", "foo-bar", "naïve"} {
		assert.Error(t, ValidateIdentifier(s), s)
	}
}
