package entity

import (
	"testing"
)

func TestStageStatusDefaultsToPending(t *testing.T) {
	var stages StageSet
	for _, key := range StageKeys {
		if got := stages.Status(key); got != StageStatusPending {
			t.Errorf("Status(%s) = %q, want %q", key, got, StageStatusPending)
		}
	}

	// A stage touched on other fields still reports Pendente.
	stages.Cut.Provider = "Facção Central"
	if got := stages.Status(StageCut); got != StageStatusPending {
		t.Errorf("Status(cut) with provider only = %q, want %q", got, StageStatusPending)
	}
}

func TestWithFieldLeavesSiblingsUntouched(t *testing.T) {
	original := StageSet{
		Cut:    Stage{Provider: "Corte Rápido", Status: StageStatusDone},
		Finish: Stage{Status: StageStatusInProgress},
	}

	updated, err := original.WithField(StageSew, StageFieldStatus, StageStatusInProgress)
	if err != nil {
		t.Fatalf("WithField: %v", err)
	}

	if updated.Sew.Status != StageStatusInProgress {
		t.Errorf("sew.status = %q, want %q", updated.Sew.Status, StageStatusInProgress)
	}
	if updated.Cut != original.Cut {
		t.Errorf("cut changed: %+v != %+v", updated.Cut, original.Cut)
	}
	if updated.Finish != original.Finish {
		t.Errorf("finish changed: %+v != %+v", updated.Finish, original.Finish)
	}
	// Copy-on-write: the receiver is untouched.
	if original.Sew.Status != "" {
		t.Errorf("receiver mutated: sew.status = %q", original.Sew.Status)
	}
}

func TestWithFieldRejectsUnknownInputs(t *testing.T) {
	var stages StageSet
	if _, err := stages.WithField("ironing", StageFieldStatus, StageStatusDone); err == nil {
		t.Error("expected error for unknown stage")
	}
	if _, err := stages.WithField(StageCut, "color", "blue"); err == nil {
		t.Error("expected error for unknown field")
	}
}

func TestFlagDerivation(t *testing.T) {
	tests := []struct {
		name   string
		stages StageSet
		want   string
	}{
		{
			name: "any late stage wins",
			stages: StageSet{
				Cut: Stage{Status: StageStatusLate},
				Sew: Stage{Status: StageStatusDone},
			},
			want: OrderFlagLate,
		},
		{
			name: "late beats in progress",
			stages: StageSet{
				Cut: Stage{Status: StageStatusInProgress},
				Sew: Stage{Status: StageStatusLate},
			},
			want: OrderFlagLate,
		},
		{
			name: "all recorded non-NA stages done",
			stages: StageSet{
				Cut:    Stage{Status: StageStatusDone},
				Sew:    Stage{Status: StageStatusDone},
				Finish: Stage{Status: StageStatusNA},
			},
			want: OrderFlagComplete,
		},
		{
			name:   "single stage in progress",
			stages: StageSet{Cut: Stage{Status: StageStatusInProgress}},
			want:   OrderFlagInProgress,
		},
		{
			name:   "empty set is pending",
			stages: StageSet{},
			want:   OrderFlagPending,
		},
		{
			name: "explicit pending blocks completion",
			stages: StageSet{
				Cut: Stage{Status: StageStatusDone},
				Sew: Stage{Status: StageStatusPending},
			},
			want: OrderFlagPending,
		},
		{
			name: "only NA stages is pending",
			stages: StageSet{
				Cut: Stage{Status: StageStatusNA},
				Sew: Stage{Status: StageStatusNA},
			},
			want: OrderFlagPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stages.Flag(); got != tt.want {
				t.Errorf("Flag() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStageStatusLabels(t *testing.T) {
	tests := map[string]string{
		StageStatusLate:       "Atrasado",
		StageStatusDone:       "Concluído",
		StageStatusInProgress: "Andamento",
		StageStatusNA:         "Não se Aplica",
		StageStatusPending:    "Pendente",
		"":                    "Pendente",
	}
	for code, want := range tests {
		if got := StageStatusLabel(code); got != want {
			t.Errorf("StageStatusLabel(%q) = %q, want %q", code, got, want)
		}
	}
}

func TestStageSetScanValueRoundTrip(t *testing.T) {
	original := StageSet{
		Modeling: Stage{Provider: "Interno", Status: StageStatusDone},
		Sew:      Stage{Provider: "Costura Fina", DateIn: "2024-03-01", Status: StageStatusInProgress},
	}

	value, err := original.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}

	var decoded StageSet
	if err := decoded.Scan(value); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if decoded != original {
		t.Errorf("round trip mismatch: %+v != %+v", decoded, original)
	}

	// Drivers may hand back TEXT instead of BLOB.
	var fromString StageSet
	if err := fromString.Scan(string(value.([]byte))); err != nil {
		t.Fatalf("Scan(string): %v", err)
	}
	if fromString != original {
		t.Errorf("string round trip mismatch: %+v != %+v", fromString, original)
	}
}
