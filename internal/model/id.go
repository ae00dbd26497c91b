package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// storedID decodes an id written either as a JSON string or, by older data
// that used a millisecond timestamp, as a JSON number.
type storedID string

func (id *storedID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*id = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = storedID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or a number, got %s", b)
	}
	*id = storedID(n.String())
	return nil
}

// UnmarshalJSON accepts numeric ids.
func (t *Task) UnmarshalJSON(b []byte) error {
	type plain Task
	aux := struct {
		*plain
		ID storedID `json:"id"`
	}{plain: (*plain)(t)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	t.ID = string(aux.ID)
	return nil
}

// UnmarshalJSON accepts numeric ids.
func (d *ImportantDate) UnmarshalJSON(b []byte) error {
	type plain ImportantDate
	aux := struct {
		*plain
		ID storedID `json:"id"`
	}{plain: (*plain)(d)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	d.ID = string(aux.ID)
	return nil
}

// UnmarshalJSON accepts numeric ids.
func (e *StudyLogEntry) UnmarshalJSON(b []byte) error {
	type plain StudyLogEntry
	aux := struct {
		*plain
		ID storedID `json:"id"`
	}{plain: (*plain)(e)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	e.ID = string(aux.ID)
	return nil
}
