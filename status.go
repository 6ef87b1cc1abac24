package nightscout

import "encoding/json"

// ServerStatus reports the server's version, capabilities and settings.
type ServerStatus struct {
	Status     string
	Version    string
	Name       string
	APIEnabled bool
	Settings   map[string]any
}

func (s *ServerStatus) UnmarshalJSON(data []byte) error {
	var raw struct {
		Status     *string        `json:"status"`
		Version    *string        `json:"version"`
		Name       *string        `json:"name"`
		APIEnabled *bool          `json:"apiEnabled"`
		Settings   map[string]any `json:"settings"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var missing []string
	if raw.Status == nil {
		missing = append(missing, "status")
	}
	if raw.Version == nil {
		missing = append(missing, "version")
	}
	if raw.Name == nil {
		missing = append(missing, "name")
	}
	if raw.APIEnabled == nil {
		missing = append(missing, "apiEnabled")
	}
	if raw.Settings == nil {
		missing = append(missing, "settings")
	}
	if len(missing) > 0 {
		return &SchemaError{Entity: "ServerStatus", Missing: missing}
	}

	s.Status = *raw.Status
	s.Version = *raw.Version
	s.Name = *raw.Name
	s.APIEnabled = *raw.APIEnabled
	s.Settings = raw.Settings
	return nil
}
