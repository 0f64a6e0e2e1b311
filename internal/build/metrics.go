package build

import (
	"time"
)

// StageTiming records how one stage of an invocation went.
type StageTiming struct {
	Stage     string
	Duration  time.Duration
	Succeeded bool
}

// PipelineMetrics tracks the stages of a single pipeline invocation. A
// pipeline runs on one goroutine, so no locking is needed.
type PipelineMetrics struct {
	stages []StageTiming
}

// NewPipelineMetrics creates an empty metrics tracker
func NewPipelineMetrics() *PipelineMetrics {
	return &PipelineMetrics{}
}

// Record appends the timing of a finished stage.
func (pm *PipelineMetrics) Record(stage string, duration time.Duration, succeeded bool) {
	pm.stages = append(pm.stages, StageTiming{
		Stage:     stage,
		Duration:  duration,
		Succeeded: succeeded,
	})
}

// StageNames returns the names of the stages that ran, in order.
func (pm *PipelineMetrics) StageNames() []string {
	names := make([]string, len(pm.stages))
	for i, s := range pm.stages {
		names[i] = s.Stage
	}
	return names
}

// TotalDuration returns the summed duration of all recorded stages.
func (pm *PipelineMetrics) TotalDuration() time.Duration {
	var total time.Duration
	for _, s := range pm.stages {
		total += s.Duration
	}
	return total
}

// FailedStage returns the name of the stage that failed, if any.
func (pm *PipelineMetrics) FailedStage() (string, bool) {
	for _, s := range pm.stages {
		if !s.Succeeded {
			return s.Stage, true
		}
	}
	return "", false
}
