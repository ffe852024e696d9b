package observability

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/calverts/userhub/internal/store"
)

// ObserveStore wraps one logical store operation, recording its duration
// and classifying any error. Satisfies store.OpObserver.
func (p *Prom) ObserveStore(op string, fn func() error) error {
	start := time.Now()
	err := fn()

	status := "ok"

	if err != nil {
		status = "error"
		p.StoreErrors.WithLabelValues(op, classifyStoreErr(err)).Inc()
	}
	p.StoreOpDuration.WithLabelValues(op, status).Observe(time.Since(start).Seconds())
	return err
}

func classifyStoreErr(err error) string {
	switch {
	case errors.Is(err, store.ErrCorrupt):
		return "corrupt"
	case errors.Is(err, store.ErrNotFound):
		return "not_found"
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return "io"
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "permission"):
		return "io"
	default:
		return "unknown"
	}
}
