package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-client-id vehicle identifier
//	-c/-config json file path with configs
//	-log diagnostic log path
//	-cert/-key/-ca PEM files of the mutual TLS identity
//	-server-name name verified in the server certificate
//	-d database DSN
//	-host server host (client)
//	-push-port/-sync-port/-query-port per-flow server ports (client)
//	-push-address/-sync-address/-query-address listener addresses in format [host]:[port] (server)
//	-metrics-address metrics listener address (server)
//	-known-clients comma separated list of provisioned client ids (server)
//	-sync-interval automatic sync period (client)
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("epr-sync", flag.ContinueOnError)

	var pushAddress, syncAddress, queryAddress, metricsAddress NetAddress
	var clientID, jsonConfigPath, diagnosticLog string
	var certFile, keyFile, caFile, serverName string
	var databaseDSN string
	var host string
	var pushPort, syncPort, queryPort int
	var knownClients string
	var syncInterval time.Duration

	fs.StringVar(&clientID, "client-id", "", "Vehicle client identifier")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&diagnosticLog, "log", "", "Diagnostic log file path")
	fs.StringVar(&certFile, "cert", "", "Certificate PEM file")
	fs.StringVar(&keyFile, "key", "", "Private key PEM file")
	fs.StringVar(&caFile, "ca", "", "Trust anchor PEM file")
	fs.StringVar(&serverName, "server-name", "", "Expected server certificate name")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&host, "host", "", "Sync server host")
	fs.IntVar(&pushPort, "push-port", 0, "Record push port")
	fs.IntVar(&syncPort, "sync-port", 0, "Update sync port")
	fs.IntVar(&queryPort, "query-port", 0, "Query port")
	fs.Var(&pushAddress, "push-address", "Push listener address host:port")
	fs.Var(&syncAddress, "sync-address", "Sync listener address host:port")
	fs.Var(&queryAddress, "query-address", "Query listener address host:port")
	fs.Var(&metricsAddress, "metrics-address", "Metrics listener address host:port")
	fs.StringVar(&knownClients, "known-clients", "", "Comma separated provisioned client ids")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Automatic sync interval (e.g., 5m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			ClientID:      clientID,
			DiagnosticLog: diagnosticLog,
		},
		Identity: Identity{
			CertFile:   certFile,
			KeyFile:    keyFile,
			CAFile:     caFile,
			ServerName: serverName,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			PushAddress:    pushAddress.String(),
			SyncAddress:    syncAddress.String(),
			QueryAddress:   queryAddress.String(),
			MetricsAddress: metricsAddress.String(),
			KnownClients:   splitList(knownClients),
		},
		Adapter: Adapter{
			Host:      host,
			PushPort:  pushPort,
			SyncPort:  syncPort,
			QueryPort: queryPort,
		},
		Workers:      Workers{SyncInterval: syncInterval},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost" or empty (all interfaces).
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
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
