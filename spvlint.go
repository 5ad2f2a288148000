// Package spvlint provides a static analyzer for SPIR-V shader
// modules.
//
// The linter's single diagnostic is a derivative instruction executed
// under non-uniform control flow: implicit-LOD image samples and
// explicit derivatives require helper-invocation lane convergence, so
// executing them from divergent control flow yields undefined values
// on GPUs. Each finding comes with a causal chain explaining why the
// enclosing block is divergent.
//
// Example usage:
//
//	linter := spvlint.New()
//	linter.SetMessageConsumer(func(d lint.Diagnostic) {
//	    fmt.Fprintln(os.Stderr, d.Message)
//	})
//	ok := linter.Run(binary)
//
// Run returns false only when the binary cannot be decoded; lint
// findings are warnings and never fail the run.
package spvlint

import (
	"go.uber.org/zap"

	"github.com/gogpu/spvlint/ir"
	"github.com/gogpu/spvlint/lint"
)

// Options configures a Linter.
type Options struct {
	// Logger receives debug-level progress logging. Diagnostics are
	// never logged; they go to the message consumer.
	Logger *zap.Logger
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// Linter lints SPIR-V modules in the Vulkan 1.2 environment.
type Linter struct {
	consumer lint.MessageConsumer
	logger   *zap.Logger
}

// New creates a Linter with default options and a consumer that
// discards all diagnostics. Use SetMessageConsumer if messages are of
// concern.
func New() *Linter {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates a Linter with the given options.
func NewWithOptions(opts Options) *Linter {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Linter{
		consumer: func(lint.Diagnostic) {},
		logger:   logger,
	}
}

// SetMessageConsumer sets the consumer invoked once for each
// diagnostic the linter produces.
func (l *Linter) SetMessageConsumer(consumer lint.MessageConsumer) {
	if consumer != nil {
		l.consumer = consumer
	}
}

// Run lints the given SPIR-V binary. It returns false when the binary
// cannot be decoded; once decode succeeds it returns true regardless
// of findings, which are reported to the message consumer as
// warnings.
func (l *Linter) Run(binary []byte) bool {
	words, err := ir.WordsFromBytes(binary)
	if err != nil {
		l.logger.Debug("decode failed", zap.Error(err))
		return false
	}
	return l.RunWords(words)
}

// RunWords lints a SPIR-V module given as its 32-bit word stream.
func (l *Linter) RunWords(words []uint32) bool {
	module, err := ir.BuildModule(words)
	if err != nil {
		l.logger.Debug("module build failed", zap.Error(err))
		return false
	}
	l.logger.Debug("module decoded",
		zap.Uint32("bound", module.Bound),
		zap.Int("functions", len(module.Functions)))

	ctx := ir.NewContext(module)
	lint.Run(ctx, l.consumer)
	return true
}
