package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// FleetSnapshotLimit caps the number of vessels returned by a fleet snapshot.
const FleetSnapshotLimit = 10

var ErrReportNotFound = errors.New("position report not found")

// MetaData is the nested metadata section of a position report. Only the
// vessel identifier and the report time are interpreted; every other field is
// carried in Extra untouched.
type MetaData struct {
	MMSI    uint32         `bson:"MMSI"`
	TimeUTC time.Time      `bson:"time_utc"`
	Extra   map[string]any `bson:",inline"`
}

// PositionReport is one timestamped record of a vessel's reported position.
// Fields holds the rest of the stored document (message body, message type, ...).
type PositionReport struct {
	MetaData MetaData       `bson:"MetaData"`
	Fields   map[string]any `bson:",inline"`
}

const (
	keyMetaData = "MetaData"
	keyMMSI     = "MMSI"
	keyTimeUTC  = "time_utc"
	keyStoreID  = "_id"
)

func (m MetaData) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(m.Extra)+2)
	for k, v := range m.Extra {
		out[k] = v
	}
	out[keyMMSI] = m.MMSI
	out[keyTimeUTC] = m.TimeUTC.UTC()
	return json.Marshal(out)
}

func (m *MetaData) UnmarshalJSON(data []byte) error {
	raw, err := rawFields(data)
	if err != nil {
		return err
	}
	var md MetaData
	if v, ok := raw[keyMMSI]; ok {
		if err := json.Unmarshal(v, &md.MMSI); err != nil {
			return fmt.Errorf("decode %s: %w", keyMMSI, err)
		}
		delete(raw, keyMMSI)
	}
	if v, ok := raw[keyTimeUTC]; ok {
		if err := json.Unmarshal(v, &md.TimeUTC); err != nil {
			return fmt.Errorf("decode %s: %w", keyTimeUTC, err)
		}
		md.TimeUTC = md.TimeUTC.UTC()
		delete(raw, keyTimeUTC)
	}
	if md.Extra, err = decodeRest(raw); err != nil {
		return err
	}
	*m = md
	return nil
}

// MarshalJSON flattens the passthrough fields beside MetaData. The storage
// key is never exposed.
func (r PositionReport) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Fields)+1)
	for k, v := range r.Fields {
		if k == keyStoreID {
			continue
		}
		out[k] = v
	}
	out[keyMetaData] = r.MetaData
	return json.Marshal(out)
}

func (r *PositionReport) UnmarshalJSON(data []byte) error {
	raw, err := rawFields(data)
	if err != nil {
		return err
	}
	var pr PositionReport
	if v, ok := raw[keyMetaData]; ok {
		if err := json.Unmarshal(v, &pr.MetaData); err != nil {
			return fmt.Errorf("decode %s: %w", keyMetaData, err)
		}
		delete(raw, keyMetaData)
	}
	if pr.Fields, err = decodeRest(raw); err != nil {
		return err
	}
	*r = pr
	return nil
}

func rawFields(data []byte) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func decodeRest(raw map[string]json.RawMessage) (map[string]any, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	rest := make(map[string]any, len(raw))
	for k, v := range raw {
		var val any
		if err := json.Unmarshal(v, &val); err != nil {
			return nil, fmt.Errorf("decode %s: %w", k, err)
		}
		rest[k] = val
	}
	return rest, nil
}
