package client

import (
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/internal/nav"
	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/internal/session"
	"github.com/MiguelCGonzales94/Curso-Online/pkg/sdk"
)

// ProviderOptions configures a Provider.
type ProviderOptions struct {
	ServerURL string
	// SessionDir holds the session file; empty selects ~/.curso-online.
	SessionDir string
	// Store replaces the file-backed session store when set.
	Store sdk.SessionStore
	// Base is the transport under the auth interceptor; http.DefaultTransport when nil.
	Base   http.RoundTripper
	Logger *slog.Logger
}

// Provider lazily builds the session store, router, SDK client and auth
// manager shared by one cursoctl invocation.
type Provider struct {
	opts        ProviderOptions
	bearerToken string // ephemeral token that bypasses the stored session (for CI)

	storeOnce sync.Once
	store     sdk.SessionStore
	storeErr  error

	routerOnce sync.Once
	router     *nav.Router
	routerErr  error

	sdkOnce   sync.Once
	transport *sdk.AuthTransport
	sdkClient *sdk.Client
	sdkErr    error

	authOnce sync.Once
	auth     *sdk.AuthManager
	authErr  error
}

// NewProvider constructs a Provider from opts.
func NewProvider(opts ProviderOptions) *Provider {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Provider{opts: opts}
}

// SetBearerToken injects an ephemeral bearer token attached instead of the
// stored one. It must be called before the first SDKClient call.
func (p *Provider) SetBearerToken(token string) {
	p.bearerToken = token
}

// ServerURL returns the backend base URL.
func (p *Provider) ServerURL() string {
	return p.opts.ServerURL
}

// Logger returns the diagnostic logger.
func (p *Provider) Logger() *slog.Logger {
	return p.opts.Logger
}

// Store returns the session store.
func (p *Provider) Store() (sdk.SessionStore, error) {
	p.storeOnce.Do(func() {
		if p.opts.Store != nil {
			p.store = p.opts.Store
			return
		}
		store, err := session.NewFileStore(p.opts.SessionDir)
		if err != nil {
			p.storeErr = err
			return
		}
		p.store = store
	})
	return p.store, p.storeErr
}

// Router returns the navigator evaluating the route guards over the session.
func (p *Provider) Router() (*nav.Router, error) {
	p.routerOnce.Do(func() {
		store, err := p.Store()
		if err != nil {
			p.routerErr = err
			return
		}
		p.router, p.routerErr = nav.NewRouter(store, nav.DefaultRoutes, nav.WithLogger(p.opts.Logger))
	})
	return p.router, p.routerErr
}

// HTTPClient returns an http.Client whose transport attaches the session
// token and invalidates the session on 401/403.
func (p *Provider) HTTPClient() (*http.Client, error) {
	if _, err := p.SDKClient(); err != nil {
		return nil, err
	}
	return &http.Client{Transport: p.transport}, nil
}

// SDKClient returns the SDK client bound to the server URL.
func (p *Provider) SDKClient() (*sdk.Client, error) {
	p.sdkOnce.Do(func() {
		store, err := p.Store()
		if err != nil {
			p.sdkErr = err
			return
		}
		router, err := p.Router()
		if err != nil {
			p.sdkErr = err
			return
		}

		p.transport = &sdk.AuthTransport{
			Store:       store,
			Navigator:   router,
			Base:        p.opts.Base,
			BearerToken: p.bearerToken,
			Logger:      p.opts.Logger,
		}
		p.sdkClient = sdk.NewClient(p.opts.ServerURL,
			sdk.WithHTTPClient(&http.Client{Transport: p.transport}),
			sdk.WithLogger(p.opts.Logger),
		)
	})
	return p.sdkClient, p.sdkErr
}

// Auth returns the auth session manager. Its state is reloaded whenever the
// transport invalidates the session.
func (p *Provider) Auth() (*sdk.AuthManager, error) {
	p.authOnce.Do(func() {
		client, err := p.SDKClient()
		if err != nil {
			p.authErr = err
			return
		}
		router, err := p.Router()
		if err != nil {
			p.authErr = err
			return
		}

		p.auth = sdk.NewAuthManager(client, p.store,
			sdk.WithNavigator(router),
			sdk.WithAuthLogger(p.opts.Logger),
		)
		p.transport.OnInvalidate = p.auth.Reload
	})
	return p.auth, p.authErr
}
