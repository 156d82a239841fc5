package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN (postgres:// URL or SQLite file path)
//	-upload-dir attachment upload directory
//	-max-upload-size maximum upload size in bytes
//	-session-secret session cookie authentication key
//	-session-lifetime session inactivity lifetime (e.g. "30m")
//	-sessions-dir server-side session file directory
//	-classifier-url zero-shot classification endpoint
//	-classifier-token bearer token for the classification endpoint
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var uploadDir string
	var maxUploadSize int64
	var sessionSecret string
	var sessionLifetime time.Duration
	var sessionsDir string
	var classifierURL string
	var classifierToken string
	var requestTimeout time.Duration
	var jsonConfigPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&uploadDir, "upload-dir", "", "Attachment upload directory")
	flag.Int64Var(&maxUploadSize, "max-upload-size", 0, "Maximum upload size in bytes")
	flag.StringVar(&sessionSecret, "session-secret", "", "Session cookie authentication key")
	flag.DurationVar(&sessionLifetime, "session-lifetime", 0, "Session inactivity lifetime (e.g., 30m)")
	flag.StringVar(&sessionsDir, "sessions-dir", "", "Server-side session file directory")
	flag.StringVar(&classifierURL, "classifier-url", "", "Zero-shot classification endpoint URL")
	flag.StringVar(&classifierToken, "classifier-token", "", "Bearer token for the classification endpoint")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			SessionSecret:   sessionSecret,
			SessionLifetime: sessionLifetime,
			SessionsDir:     sessionsDir,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				UploadDir:     uploadDir,
				MaxUploadSize: maxUploadSize,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Classifier: Classifier{
			URL:   classifierURL,
			Token: classifierToken,
		},
		Workers:      Workers{},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string.
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

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
