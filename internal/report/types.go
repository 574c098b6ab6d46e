package report

import (
	"runtime"
	"time"
)

type Report struct {
	Meta    Meta    `json:"meta"`
	Entries []Entry `json:"entries"`
	Passed  int     `json:"passed"`
	Failed  int     `json:"failed"`
}

type Meta struct {
	Suite       string          `json:"suite"`
	Timestamp   time.Time       `json:"timestamp"`
	Environment EnvironmentInfo `json:"environment"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

type Entry struct {
	ScenarioID string        `json:"scenario_id"`
	Outcomes   []string      `json:"outcomes"`
	Variables  int           `json:"variables"`
	Mismatches []string      `json:"mismatches,omitempty"`
	Duration   time.Duration `json:"duration"`
	Error      string        `json:"error,omitempty"`
}

func (e Entry) Passed() bool {
	return e.Error == "" && len(e.Mismatches) == 0
}
