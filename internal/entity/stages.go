package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StageKey identifies one step of the production pipeline.
type StageKey string

const (
	StageModeling   StageKey = "modeling"
	StageCut        StageKey = "cut"
	StageSew        StageKey = "sew"
	StageDyeing     StageKey = "dyeing"
	StageEmbroidery StageKey = "embroidery"
	StageSilk       StageKey = "silk"
	StageDTFPrint   StageKey = "dtf_print"
	StageDTFPress   StageKey = "dtf_press"
	StageFinish     StageKey = "finish"
)

// StageKeys is the fixed pipeline order used by derived views and exports.
var StageKeys = []StageKey{
	StageModeling,
	StageCut,
	StageSew,
	StageDyeing,
	StageEmbroidery,
	StageSilk,
	StageDTFPrint,
	StageDTFPress,
	StageFinish,
}

// Stage status codes as stored. The UI vocabulary is Portuguese and the
// abbreviated forms are the persisted values.
const (
	StageStatusPending    = "Pendente"
	StageStatusInProgress = "Andam."
	StageStatusDone       = "OK"
	StageStatusLate       = "Atras."
	StageStatusNA         = "N/A"
)

// Stage field names accepted by the field-level stage upsert.
const (
	StageFieldProvider = "provider"
	StageFieldDateIn   = "date_in"
	StageFieldDateOut  = "date_out"
	StageFieldStatus   = "status"
)

// Stage is the progress record of one pipeline step on one order.
type Stage struct {
	Provider string `json:"provider,omitzero"`
	DateIn   string `json:"date_in,omitzero"`
	DateOut  string `json:"date_out,omitzero"`
	Status   string `json:"status,omitzero"`
}

// StageSet holds one Stage per pipeline stage. A zero-valued Stage is
// equivalent to an absent one: status Pendente, no provider, no dates.
// Fixed fields instead of a map so every derived computation has to
// account for every stage.
type StageSet struct {
	Modeling   Stage `json:"modeling,omitzero"`
	Cut        Stage `json:"cut,omitzero"`
	Sew        Stage `json:"sew,omitzero"`
	Dyeing     Stage `json:"dyeing,omitzero"`
	Embroidery Stage `json:"embroidery,omitzero"`
	Silk       Stage `json:"silk,omitzero"`
	DTFPrint   Stage `json:"dtf_print,omitzero"`
	DTFPress   Stage `json:"dtf_press,omitzero"`
	Finish     Stage `json:"finish,omitzero"`
}

func (s *StageSet) ref(key StageKey) *Stage {
	switch key {
	case StageModeling:
		return &s.Modeling
	case StageCut:
		return &s.Cut
	case StageSew:
		return &s.Sew
	case StageDyeing:
		return &s.Dyeing
	case StageEmbroidery:
		return &s.Embroidery
	case StageSilk:
		return &s.Silk
	case StageDTFPrint:
		return &s.DTFPrint
	case StageDTFPress:
		return &s.DTFPress
	case StageFinish:
		return &s.Finish
	}
	return nil
}

// Get returns the stage record for key, zero-valued for unknown keys.
func (s StageSet) Get(key StageKey) Stage {
	if st := s.ref(key); st != nil {
		return *st
	}
	return Stage{}
}

// Status returns the effective status for key. Total: an unset stage
// reports Pendente.
func (s StageSet) Status(key StageKey) string {
	if st := s.Get(key).Status; st != "" {
		return st
	}
	return StageStatusPending
}

// WithField returns a copy of the set with a single field of a single
// stage replaced. The receiver and all sibling stages are untouched.
func (s StageSet) WithField(key StageKey, field, value string) (StageSet, error) {
	st := s.ref(key)
	if st == nil {
		return s, fmt.Errorf("unknown stage %q", key)
	}
	switch field {
	case StageFieldProvider:
		st.Provider = value
	case StageFieldDateIn:
		st.DateIn = value
	case StageFieldDateOut:
		st.DateOut = value
	case StageFieldStatus:
		st.Status = value
	default:
		return s, fmt.Errorf("unknown stage field %q", field)
	}
	return s, nil
}

// Order-level flags derived from the stage statuses.
const (
	OrderFlagLate       = "late"
	OrderFlagInProgress = "in_progress"
	OrderFlagComplete   = "complete"
	OrderFlagPending    = "pending"
)

// Flag classifies the order from its stage statuses, first match wins:
// late if any stage is Atras.; in_progress if any stage is Andam.;
// complete if every touched stage not marked N/A is OK (and at least
// one is); pending otherwise. N/A stages are outside the pipeline for
// this order and never count toward lateness or completion. Stages that
// were never touched do not block completion either: only the recorded
// pipeline is judged.
func (s StageSet) Flag() string {
	var anyLate, anyInProgress bool
	var done, recorded int
	for _, key := range StageKeys {
		switch s.Get(key).Status {
		case StageStatusLate:
			anyLate = true
		case StageStatusInProgress:
			anyInProgress = true
			recorded++
		case StageStatusDone:
			done++
			recorded++
		case "", StageStatusNA:
		default:
			recorded++
		}
	}
	switch {
	case anyLate:
		return OrderFlagLate
	case anyInProgress:
		return OrderFlagInProgress
	case recorded > 0 && done == recorded:
		return OrderFlagComplete
	}
	return OrderFlagPending
}

// StageStatusLabel maps a stored status code to its human-readable form
// used on exports and printed documents.
func StageStatusLabel(status string) string {
	switch status {
	case StageStatusLate:
		return "Atrasado"
	case StageStatusDone:
		return "Concluído"
	case StageStatusInProgress:
		return "Andamento"
	case StageStatusNA:
		return "Não se Aplica"
	default:
		return "Pendente"
	}
}

// StageLabel is the display name of a pipeline stage.
func StageLabel(key StageKey) string {
	switch key {
	case StageModeling:
		return "Modelagem"
	case StageCut:
		return "Corte"
	case StageSew:
		return "Costura"
	case StageDyeing:
		return "Tinturaria"
	case StageEmbroidery:
		return "Bordado"
	case StageSilk:
		return "Silk"
	case StageDTFPrint:
		return "Impressão DTF"
	case StageDTFPress:
		return "Prensa DTF"
	case StageFinish:
		return "Acabamento"
	}
	return string(key)
}

// Value implements driver.Valuer so StageSet persists as a JSONB column.
func (s StageSet) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements sql.Scanner.
func (s *StageSet) Scan(value interface{}) error {
	if value == nil {
		*s = StageSet{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	}
	return fmt.Errorf("failed to scan StageSet: %v", value)
}
