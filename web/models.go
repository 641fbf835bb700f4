package web

import (
	"bet-tracker/api/api"
)

// Config holds the configuration for the web server
type Config struct {
	Addr string
	API  *api.API
}

// Server is the HTTP server that handles report and webhook requests
type Server struct {
	api *api.API
}
