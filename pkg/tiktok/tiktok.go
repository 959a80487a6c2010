package tiktok

import (
	"context"
	"net/url"
	"strings"

	"github.com/segmentio/ksuid"

	"reelsmith/pkg/schema"
)

const authorizeEndpoint = "https://www.tiktok.com/v2/auth/authorize/"

// Publisher is the outbound TikTok boundary. Only the OAuth connect URL is
// real today; publishing is stubbed until the integration lands.
type Publisher interface {
	AuthorizeURL(state string) string
	Publish(ctx context.Context, req PublishRequest) (string, error)
}

type Config struct {
	ClientKey   string
	RedirectURI string
	Scopes      []string
}

type PublishRequest struct {
	Caption  string `json:"caption"`
	VideoURL string `json:"videoUrl"`
}

type Client struct {
	cfg Config
}

func New(cfg Config) *Client {
	if len(cfg.Scopes) == 0 {
		cfg.Scopes = []string{"user.info.basic", "video.publish"}
	}
	return &Client{cfg: cfg}
}

// NewState mints the opaque state token carried through the OAuth redirect.
func NewState() string {
	return ksuid.New().String()
}

// AuthorizeURL builds the TikTok OAuth authorization URL for this app.
func (c *Client) AuthorizeURL(state string) string {
	q := url.Values{}
	q.Set("client_key", c.cfg.ClientKey)
	q.Set("response_type", "code")
	q.Set("scope", strings.Join(c.cfg.Scopes, ","))
	q.Set("redirect_uri", c.cfg.RedirectURI)
	q.Set("state", state)
	return authorizeEndpoint + "?" + q.Encode()
}

// Publish will upload a generated video to the connected account.
// TODO: wire the content-posting API once app review clears.
func (c *Client) Publish(ctx context.Context, req PublishRequest) (string, error) {
	return "", schema.ErrNotImplemented
}
