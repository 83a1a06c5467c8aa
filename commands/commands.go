package commands

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/rrosajp/poium/driver"
	"github.com/rrosajp/poium/page"
	"github.com/rrosajp/poium/utils"
)

// CommandResponse represents a standardized response format for all commands
type CommandResponse struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// NewSuccessResponse creates a success response
func NewSuccessResponse(data interface{}) *CommandResponse {
	return &CommandResponse{
		Status: "ok",
		Data:   data,
	}
}

// NewErrorResponse creates an error response
func NewErrorResponse(err error) *CommandResponse {
	return &CommandResponse{
		Status: "error",
		Error:  err.Error(),
	}
}

// RemoteConfig describes how to reach the wrapped automation driver
type RemoteConfig struct {
	Address  string
	Platform string
	Username string
	Password string
}

// session pairs a page helper with the client owning its wire session
type session struct {
	page   *page.Page
	client *driver.Client
}

// sessionCacheSize bounds how many remote driver sessions stay open at once;
// evicted entries have their wire session deleted
const sessionCacheSize = 8

var (
	cacheMu       sync.Mutex
	sessionCache  *lru.Cache[string, *session]
	defaultRemote RemoteConfig
)

func init() {
	cache, err := lru.NewWithEvict(sessionCacheSize, func(addr string, s *session) {
		if err := s.client.Close(); err != nil {
			utils.Verbose("error closing session for %s: %v", addr, err)
		}
	})
	if err != nil {
		panic(err)
	}
	sessionCache = cache
}

// SetDefaultRemote sets the driver endpoint used when a request does not
// name one. It should be called once at application startup.
func SetDefaultRemote(cfg RemoteConfig) {
	defaultRemote = cfg
}

// FindPage returns the page helper for the given remote address, creating
// and caching a driver session on first use. An empty address selects the
// default remote.
func FindPage(remote string) (*page.Page, error) {
	cfg := defaultRemote
	if remote != "" {
		cfg.Address = remote
	}
	if cfg.Address == "" {
		return nil, fmt.Errorf("no remote driver address configured")
	}

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if s, ok := sessionCache.Get(cfg.Address); ok {
		return s.page, nil
	}

	client := driver.NewClient(cfg.Address)
	if cfg.Platform != "" {
		client.SetPlatform(cfg.Platform)
	}
	if cfg.Username != "" {
		client.SetBasicAuth(cfg.Username, cfg.Password)
	}

	s := &session{
		page:   page.New(client),
		client: client,
	}
	sessionCache.Add(cfg.Address, s)
	return s.page, nil
}

// CloseAll deletes every cached driver session. Called on shutdown.
func CloseAll() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	sessionCache.Purge()
}
