// Package storage implements presigned uploads on local disk. Upload URLs are
// authorized by an HMAC over the object key and expiry, so the upload endpoint
// itself stays outside the authenticated API surface.
package storage

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"helpdesk/internal/shared/biztime"
)

// PresignedUpload is handed to the dashboard: the client PUTs the file to
// UploadURL before the signature expires, then references PublicURL on the
// ticket.
type PresignedUpload struct {
	Key       string
	UploadURL string
	PublicURL string
	ExpiresAt time.Time
}

type Presigner struct {
	secret  []byte
	expiry  time.Duration
	baseURL string
}

func NewPresigner(secret string, expiry time.Duration, baseURL string) *Presigner {
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}
	return &Presigner{
		secret:  []byte(secret),
		expiry:  expiry,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Presign generates a fresh object key for the filename and signs an upload
// URL for it. The key embeds random bytes so names never collide and clients
// cannot guess the keys of other uploads.
func (p *Presigner) Presign(filename string) (*PresignedUpload, error) {
	var randomBytes [16]byte
	if _, err := rand.Read(randomBytes[:]); err != nil {
		return nil, fmt.Errorf("failed to generate upload key: %w", err)
	}

	key := hex.EncodeToString(randomBytes[:])
	if ext := sanitizeExt(filename); ext != "" {
		key += ext
	}

	expiresAt := biztime.NowUTC().Add(p.expiry)
	sig := p.sign(key, expiresAt.Unix())

	uploadURL := fmt.Sprintf("%s/uploads/%s?expires=%d&signature=%s",
		p.baseURL, url.PathEscape(key), expiresAt.Unix(), sig)

	return &PresignedUpload{
		Key:       key,
		UploadURL: uploadURL,
		PublicURL: fmt.Sprintf("%s/uploads/%s", p.baseURL, url.PathEscape(key)),
		ExpiresAt: expiresAt,
	}, nil
}

// Verify checks the signature and expiry attached to an upload request.
func (p *Presigner) Verify(key, expiresParam, signature string) error {
	expires, err := strconv.ParseInt(expiresParam, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid expiry")
	}

	if biztime.NowUTC().Unix() > expires {
		return fmt.Errorf("upload URL expired")
	}

	expected := p.sign(key, expires)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return fmt.Errorf("invalid signature")
	}

	return nil
}

func (p *Presigner) sign(key string, expires int64) string {
	mac := hmac.New(sha256.New, p.secret)
	fmt.Fprintf(mac, "%s\n%d", key, expires)
	return hex.EncodeToString(mac.Sum(nil))
}

// sanitizeExt keeps a short alphanumeric extension and drops anything else,
// so keys never carry path separators or tricky characters.
func sanitizeExt(filename string) string {
	ext := strings.ToLower(path.Ext(path.Base(filename)))
	if ext == "" || len(ext) > 10 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
