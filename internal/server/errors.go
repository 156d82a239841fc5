package server

import "errors"

// errNoServersAreCreated is returned by NewServer when no HTTP address is
// configured, resulting in no transport being initialized. This is treated
// as a fatal misconfiguration and causes the application to fail at startup.
var errNoServersAreCreated = errors.New("no servers are created")
