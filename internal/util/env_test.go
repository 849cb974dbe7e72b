package util_test

import (
	"testing"

	"taskflow/internal/util"
)

func TestEnvOrDefault(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		set      bool
		fallback string
		want     string
	}{
		{name: "set", key: "TASKFLOW_TEST_A", value: ":9000", set: true, fallback: ":5000", want: ":9000"},
		{name: "unset", key: "TASKFLOW_TEST_B", fallback: ":5000", want: ":5000"},
		{name: "empty counts as unset", key: "TASKFLOW_TEST_C", value: "", set: true, fallback: "data/taskflow.db", want: "data/taskflow.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv(tt.key, tt.value)
			}
			if got := util.EnvOrDefault(tt.key, tt.fallback); got != tt.want {
				t.Errorf("EnvOrDefault(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}
