// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds a host:port pair. It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses args into a [StructuredConfig].
//
// Flags:
//
//	-a               server listen address in format [host]:[port]
//	-s               client target server address (URL or host:port)
//	-d               database DSN
//	-c/-config       json file path with configs
//	-k               request integrity hash key
//	-request-timeout inbound and outbound request timeout (e.g. "30s")
//	-clipboard-ttl   how long a revealed field stays in the clipboard
//	-mirror-path     CSV file the server mirrors created records to
//	-mirror-columns  mirror columns, "key" or "key|Header", comma separated
//	-log-level       zerolog level name
//	-log-file        client log file
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet(programName(), flag.ContinueOnError)

	var serverAddress NetAddress
	var adapterAddress string
	var databaseDSN string
	var jsonConfigPath string
	var hashKey string
	var requestTimeout time.Duration
	var clipboardTTL time.Duration
	var mirrorPath, mirrorColumns string
	var logLevel, logFile string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&adapterAddress, "s", "", "Server address the client talks to")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&hashKey, "k", "", "Request integrity hash key")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&clipboardTTL, "clipboard-ttl", 0, "Clipboard clear delay (e.g., 25s)")
	fs.StringVar(&mirrorPath, "mirror-path", "", "CSV mirror file path")
	fs.StringVar(&mirrorColumns, "mirror-columns", "", "CSV mirror columns")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Client log file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			HashKey:      hashKey,
			ClipboardTTL: clipboardTTL,
			LogLevel:     logLevel,
			LogFile:      logFile,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
			Mirror: Mirror{
				Path:    mirrorPath,
				Columns: mirrorColumns,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func programName() string {
	if len(os.Args) == 0 {
		return "vault"
	}
	return os.Args[0]
}

// String returns host:port, or "" when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host must be "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
