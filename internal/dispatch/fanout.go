package dispatch

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/thoreinstein/shotgun/internal/form"
	"github.com/thoreinstein/shotgun/internal/logging"
	"github.com/thoreinstein/shotgun/internal/platform"
)

// PostAll posts data through every adapter concurrently and waits for all
// of them. Results are returned in adapter order. A failing or panicking
// adapter never cancels its siblings; each receives its own copy of data.
func PostAll(ctx context.Context, adapters []Adapter, data form.Data) []Result {
	results := make([]Result, len(adapters))

	var g errgroup.Group
	for i, a := range adapters {
		g.Go(func() error {
			results[i] = safePost(ctx, a, data.Clone())
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// PostToMultiplePlatforms builds an adapter per key from creds and posts
// data to all of them. Unknown keys yield a failed Result in place.
func PostToMultiplePlatforms(ctx context.Context, keys []platform.Key, data form.Data, creds map[platform.Key]Credentials, opts ...Option) []Result {
	adapters := make([]Adapter, len(keys))
	for i, key := range keys {
		a, err := New(key, creds[key], opts...)
		if err != nil {
			adapters[i] = unsupported{key: key, err: err}
			continue
		}
		adapters[i] = a
	}
	return PostAll(ctx, adapters, data)
}

func safePost(ctx context.Context, a Adapter, data form.Data) (res Result) {
	key := a.Platform()
	defer func() {
		if r := recover(); r != nil {
			logging.FromContext(ctx).Error("adapter panicked", "platform", string(key), "panic", r)
			res = failure(key, fmt.Sprintf("internal error: %v", r))
		}
	}()

	res = a.Post(ctx, data)
	res.Platform = key
	return res
}

// unsupported reports a factory error as a failed post.
type unsupported struct {
	key platform.Key
	err error
}

func (u unsupported) Platform() platform.Key    { return u.key }
func (u unsupported) ValidateCredentials() bool { return false }

func (u unsupported) Post(context.Context, form.Data) Result {
	return failure(u.key, u.err.Error())
}
