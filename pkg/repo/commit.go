package repo

import (
	"fmt"
	"strings"
	"time"

	"github.com/HugoLorent/gat/pkg/object"
)

// Clock supplies the commit timestamp. Tests substitute a fixed clock
// for deterministic commit hashes.
type Clock func() time.Time

// CommitSigner signs canonical commit payload bytes and returns an
// encoded signature string persisted in the commit's gpgsig header.
type CommitSigner func(payload []byte) (string, error)

// CommitTree creates a commit object referencing tree with the given
// parents and message, author and committer both set to who, and
// returns its hash. The referenced tree and parents are not checked
// for existence; the store validates references lazily on read.
func (r *Repo) CommitTree(tree object.Hash, parents []object.Hash, message string, who object.Identity, signer CommitSigner) (object.Hash, error) {
	// Commit messages conventionally end with a newline.
	if !strings.HasSuffix(message, "\n") {
		message += "\n"
	}

	c := &object.Commit{
		Tree:      tree,
		Parents:   parents,
		Author:    who,
		Committer: who,
		Message:   message,
	}
	if signer != nil {
		sig, err := signer(object.CommitSigningPayload(c))
		if err != nil {
			return "", fmt.Errorf("commit tree: sign: %w", err)
		}
		c.Signature = sig
	}

	h, err := r.Store.WriteCommit(c)
	if err != nil {
		return "", fmt.Errorf("commit tree: %w", err)
	}
	return h, nil
}

// ResolveIdentity builds the commit identity from repository config,
// stamped with the clock's current time. Missing config falls back to
// built-in defaults.
func (r *Repo) ResolveIdentity(clock Clock) (object.Identity, error) {
	if clock == nil {
		clock = time.Now
	}
	cfg, err := r.ReadConfig()
	if err != nil {
		return object.Identity{}, err
	}

	now := clock()
	return object.Identity{
		Name:     cfg.User.Name,
		Email:    cfg.User.Email,
		Unix:     now.Unix(),
		Timezone: now.Format("-0700"),
	}, nil
}
