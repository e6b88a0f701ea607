package progression

import (
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/alexisbeaulieu97/glint/internal/easing"
	glinterrors "github.com/alexisbeaulieu97/glint/pkg/errors"
)

// NumberFormat selects how counter values are rendered.
type NumberFormat int

const (
	FormatPlain NumberFormat = iota
	FormatCurrency
	FormatPercentage
)

// ParseNumberFormat accepts plain, currency and percentage (or percent).
func ParseNumberFormat(s string) (NumberFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "plain", "number":
		return FormatPlain, nil
	case "currency":
		return FormatCurrency, nil
	case "percentage", "percent":
		return FormatPercentage, nil
	default:
		return FormatPlain, fmt.Errorf("unknown number format %q", s)
	}
}

// Counter defaults.
const (
	DefaultCounterDuration = 2 * time.Second
	DefaultFrameInterval   = 16 * time.Millisecond
	DefaultCurrencySymbol  = "$"
	maxDecimals            = 10
)

// CounterConfig parameterizes numeric interpolation.
type CounterConfig struct {
	From     float64
	To       float64
	Duration time.Duration
	// Curve eases progress; nil selects easing.EaseOutExpo.
	Curve    easing.Curve
	Decimals int
	Format   NumberFormat
	// Currency is the symbol prefixed in FormatCurrency.
	Currency    string
	Prefix      string
	Suffix      string
	NoSeparator bool
	// Locale drives digit grouping and the decimal mark. The zero value
	// formats like English.
	Locale language.Tag
	// Formatter replaces the built-in formatting when set. It receives the
	// already rounded value.
	Formatter func(float64) string
	// FrameInterval is the delay between interpolation frames.
	FrameInterval time.Duration
}

// Counter sweeps a number from From to To.
type Counter struct {
	cfg     CounterConfig
	printer *message.Printer
	err     error

	elapsed time.Duration
	value   float64
}

// NewCounter builds a counter, applying defaults.
func NewCounter(cfg CounterConfig) *Counter {
	if cfg.Duration < 0 {
		cfg.Duration = 0
	}
	if cfg.Curve == nil {
		cfg.Curve = easing.EaseOutExpo
	}
	cfg.Decimals = min(max(cfg.Decimals, 0), maxDecimals)
	if cfg.Currency == "" {
		cfg.Currency = DefaultCurrencySymbol
	}
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = DefaultFrameInterval
	}
	locale := cfg.Locale
	if locale == language.Und {
		locale = language.English
	}

	c := &Counter{cfg: cfg, printer: message.NewPrinter(locale), value: Round(cfg.From, cfg.Decimals)}
	if cfg.From == cfg.To {
		c.err = glinterrors.NewConfigError("", "to", "from and to are equal")
	}
	return c
}

// Round rounds v half away from zero to the given number of decimals.
func Round(v float64, decimals int) float64 {
	pow := math.Pow10(decimals)
	rounded := math.Round(v*pow) / pow
	if rounded == 0 {
		return 0 // normalizes -0
	}
	return rounded
}

// Kind reports KindCounter.
func (c *Counter) Kind() Kind { return KindCounter }

// Err reports a configuration problem.
func (c *Counter) Err() error { return c.err }

// Value is the current rounded number.
func (c *Counter) Value() float64 { return c.value }

// Begin rewinds to From.
func (c *Counter) Begin() Step {
	c.elapsed = 0
	if c.err != nil || c.cfg.Duration == 0 {
		c.value = Round(c.cfg.To, c.cfg.Decimals)
		c.elapsed = c.cfg.Duration
		return done
	}
	c.value = Round(c.cfg.From, c.cfg.Decimals)
	return next(c.cfg.FrameInterval)
}

// Advance computes the next frame; the frame that reaches Duration lands on
// To exactly.
func (c *Counter) Advance() Step {
	c.elapsed += c.cfg.FrameInterval
	if c.elapsed >= c.cfg.Duration {
		c.elapsed = c.cfg.Duration
		c.value = Round(c.cfg.To, c.cfg.Decimals)
		return done
	}
	progress := float64(c.elapsed) / float64(c.cfg.Duration)
	raw := c.cfg.From + (c.cfg.To-c.cfg.From)*c.cfg.Curve(progress)
	c.value = Round(raw, c.cfg.Decimals)
	return next(c.cfg.FrameInterval)
}

// Progress is elapsed time over Duration.
func (c *Counter) Progress() float64 {
	if c.cfg.Duration <= 0 {
		return 1
	}
	return float64(c.elapsed) / float64(c.cfg.Duration)
}

// Display formats the current value.
func (c *Counter) Display() string { return c.Format(c.value) }

// Initial formats From.
func (c *Counter) Initial() string { return c.Format(Round(c.cfg.From, c.cfg.Decimals)) }

// Final formats To.
func (c *Counter) Final() string { return c.Format(Round(c.cfg.To, c.cfg.Decimals)) }

// Format renders v with the configured decimals, locale and format. v is
// expected to be rounded already.
func (c *Counter) Format(v float64) string {
	if c.cfg.Formatter != nil {
		return c.cfg.Formatter(v)
	}

	opts := []number.Option{number.Scale(c.cfg.Decimals)}
	if c.cfg.NoSeparator {
		opts = append(opts, number.NoSeparator())
	}
	digits := c.printer.Sprintf("%v", number.Decimal(math.Abs(v), opts...))

	var b strings.Builder
	if v < 0 {
		b.WriteString("-")
	}
	b.WriteString(c.cfg.Prefix)
	switch c.cfg.Format {
	case FormatCurrency:
		b.WriteString(c.cfg.Currency)
		b.WriteString(digits)
	case FormatPercentage:
		b.WriteString(digits)
		b.WriteString("%")
	default:
		b.WriteString(digits)
	}
	b.WriteString(c.cfg.Suffix)
	return b.String()
}

var (
	_ Engine     = (*Counter)(nil)
	_ Progresser = (*Counter)(nil)
)
