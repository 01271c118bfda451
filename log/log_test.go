package log_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/percona-lab/nodelist/log"
)

func TestWithAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	zl := zerolog.New(&buf).Level(zerolog.DebugLevel)
	ctx := zl.WithContext(context.Background())

	ctx = log.WithAttrs(ctx,
		log.Scope("script"),
		log.Operation("push"),
		log.Script("a.nl", 3))
	log.Debug(ctx, "applied")

	out := buf.String()
	assert.Contains(t, out, `"s":"script"`)
	assert.Contains(t, out, `"op":"push"`)
	assert.Contains(t, out, `"script":"a.nl:3"`)
	assert.Contains(t, out, `"message":"applied"`)

	buf.Reset()
	log.Infof(log.WithAttrs(ctx, log.Script("b.nl", 0)), "done in %d lines", 4)
	assert.Contains(t, buf.String(), `"script":"b.nl"`)
	assert.Contains(t, buf.String(), `"message":"done in 4 lines"`)

	buf.Reset()
	log.Error(ctx, io.ErrUnexpectedEOF, "script failed")
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), `"error":"unexpected EOF"`)
}
