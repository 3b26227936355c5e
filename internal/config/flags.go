package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
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

// ParseFlags parses configuration flags from args (without the program
// name). Every call uses its own flag.FlagSet.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-f blob directory of the server
//	-d local database DSN
//	-c/-config json file path with configs
//	-account account name on the blob server
//	-password account password on the blob server
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-provider sync provider type (folder|http)
//	-folder synced folder path
//	-remote blob server URL
//	-remote-timeout outbound request timeout
//	-sync-interval period between sync cycles
//	-once run a single sync cycle and exit
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var blobDir string
	var databaseDSN string
	var jsonConfigPath string
	var account string
	var password string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var providerType string
	var folderPath string
	var remoteAddress string
	var remoteTimeout time.Duration
	var syncInterval time.Duration
	var once bool

	fs := flag.NewFlagSet("readsync", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&blobDir, "f", "", "Blob directory")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&account, "account", "", "Account name")
	fs.StringVar(&password, "password", "", "Account password")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&providerType, "provider", "", "Sync provider (folder|http)")
	fs.StringVar(&folderPath, "folder", "", "Synced folder path")
	fs.StringVar(&remoteAddress, "remote", "", "Blob server URL")
	fs.DurationVar(&remoteTimeout, "remote-timeout", 0, "Outbound request timeout")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Period between sync cycles")
	fs.BoolVar(&once, "once", false, "Run a single sync cycle and exit")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Account:       account,
			Password:      password,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Files: Files{BlobDir: blobDir},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Provider: Provider{
			Type:           providerType,
			FolderPath:     folderPath,
			HTTPAddress:    remoteAddress,
			RequestTimeout: remoteTimeout,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
			RunOnce:      once,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
