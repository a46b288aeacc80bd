// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the optional config file.
type StructuredJSONConfig struct {
	App struct {
		HashKey      string   `json:"hash_key"`
		Version      string   `json:"version"`
		ClipboardTTL Duration `json:"clipboard_ttl"`
		LogLevel     string   `json:"log_level"`
		LogFile      string   `json:"log_file"`
	} `json:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db"`
		Mirror struct {
			Path    string `json:"path"`
			Columns string `json:"columns"`
		} `json:"mirror"`
	} `json:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter"`

	Workers struct {
		MirrorQueueSize int `json:"mirror_queue_size"`
	} `json:"workers"`
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

	return &StructuredConfig{
		App: App{
			HashKey:      jsonCfg.App.HashKey,
			Version:      jsonCfg.App.Version,
			ClipboardTTL: time.Duration(jsonCfg.App.ClipboardTTL),
			LogLevel:     jsonCfg.App.LogLevel,
			LogFile:      jsonCfg.App.LogFile,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
			Mirror: Mirror{
				Path:    jsonCfg.Storage.Mirror.Path,
				Columns: jsonCfg.Storage.Mirror.Columns,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			MirrorQueueSize: jsonCfg.Workers.MirrorQueueSize,
		},
	}, nil
}

// Duration wraps time.Duration so it can be read from JSON as either a
// string ("30s") or a number of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
