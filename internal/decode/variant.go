package decode

import "github.com/gostrace/mstrace/internal/argvalue"

// VariantSpec configures the Variant decoder: DiscriminatorIdx names the
// sibling argument whose value picks an inner decoder from Variants (keyed
// by the discriminator's signed value); Default runs when no key matches.
// SkipFor is a set of discriminator values for which this argument does not
// exist at all; SkipWhenNotSet, if non-zero, means "skip unless at least
// one of these bits is set in the discriminator".
type VariantSpec struct {
	DiscriminatorIdx int
	Variants         map[int64]Decoder
	Default          Decoder
	SkipFor          map[int64]bool
	SkipWhenNotSet   uint64
}

// Variant selects an inner decoder at runtime keyed by a sibling argument's
// value (the fcntl/ioctl cmd dispatch, or open's O_CREAT-dependent mode arg).
func Variant(spec VariantSpec) Decoder {
	return DecoderFunc(func(ctx *Context) (argvalue.Value, bool) {
		if spec.DiscriminatorIdx < 0 || spec.DiscriminatorIdx >= len(ctx.RawArgs) {
			return argvalue.Skip(), true
		}
		disc := int64(ctx.RawArgs[spec.DiscriminatorIdx])
		if spec.SkipFor != nil && spec.SkipFor[disc] {
			return argvalue.Skip(), true
		}
		if spec.SkipWhenNotSet != 0 && uint64(disc)&spec.SkipWhenNotSet == 0 {
			return argvalue.Skip(), true
		}
		inner, ok := spec.Variants[disc]
		if !ok {
			inner = spec.Default
		}
		if inner == nil {
			return argvalue.Skip(), true
		}
		return inner.Decode(ctx)
	})
}
