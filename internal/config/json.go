package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files. Durations
// may be written either as strings ("30s") or as nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		ClientID      string `json:"client_id"`
		DiagnosticLog string `json:"diagnostic_log"`
		Version       string `json:"version"`
	} `json:"app,omitempty"`

	Identity struct {
		CertFile   string `json:"cert_file"`
		KeyFile    string `json:"key_file"`
		CAFile     string `json:"ca_file"`
		ServerName string `json:"server_name"`
	} `json:"identity,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		PushAddress       string   `json:"push_address"`
		SyncAddress       string   `json:"sync_address"`
		QueryAddress      string   `json:"query_address"`
		MetricsAddress    string   `json:"metrics_address"`
		ConnectionTimeout Duration `json:"connection_timeout"`
		KnownClients      []string `json:"known_clients"`
	} `json:"server,omitempty"`

	Adapter struct {
		Host        string   `json:"host"`
		PushPort    int      `json:"push_port"`
		SyncPort    int      `json:"sync_port"`
		QueryPort   int      `json:"query_port"`
		DialTimeout Duration `json:"dial_timeout"`
		IOTimeout   Duration `json:"io_timeout"`
		RetryDelay  Duration `json:"retry_delay"`
		PushRounds  int      `json:"push_rounds"`
		RoundDelay  Duration `json:"round_delay"`
		AckTimeout  Duration `json:"ack_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SyncInterval     Duration `json:"sync_interval"`
		ArchiveInterval  Duration `json:"archive_interval"`
		ArchiveRetention Duration `json:"archive_retention"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			ClientID:      jsonCfg.App.ClientID,
			DiagnosticLog: jsonCfg.App.DiagnosticLog,
			Version:       jsonCfg.App.Version,
		},
		Identity: Identity{
			CertFile:   jsonCfg.Identity.CertFile,
			KeyFile:    jsonCfg.Identity.KeyFile,
			CAFile:     jsonCfg.Identity.CAFile,
			ServerName: jsonCfg.Identity.ServerName,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Server: Server{
			PushAddress:       jsonCfg.Server.PushAddress,
			SyncAddress:       jsonCfg.Server.SyncAddress,
			QueryAddress:      jsonCfg.Server.QueryAddress,
			MetricsAddress:    jsonCfg.Server.MetricsAddress,
			ConnectionTimeout: time.Duration(jsonCfg.Server.ConnectionTimeout),
			KnownClients:      jsonCfg.Server.KnownClients,
		},
		Adapter: Adapter{
			Host:        jsonCfg.Adapter.Host,
			PushPort:    jsonCfg.Adapter.PushPort,
			SyncPort:    jsonCfg.Adapter.SyncPort,
			QueryPort:   jsonCfg.Adapter.QueryPort,
			DialTimeout: time.Duration(jsonCfg.Adapter.DialTimeout),
			IOTimeout:   time.Duration(jsonCfg.Adapter.IOTimeout),
			RetryDelay:  time.Duration(jsonCfg.Adapter.RetryDelay),
			PushRounds:  jsonCfg.Adapter.PushRounds,
			RoundDelay:  time.Duration(jsonCfg.Adapter.RoundDelay),
			AckTimeout:  time.Duration(jsonCfg.Adapter.AckTimeout),
		},
		Workers: Workers{
			SyncInterval:     time.Duration(jsonCfg.Workers.SyncInterval),
			ArchiveInterval:  time.Duration(jsonCfg.Workers.ArchiveInterval),
			ArchiveRetention: time.Duration(jsonCfg.Workers.ArchiveRetention),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
