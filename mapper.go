package tsgen

import (
	"github.com/semohr/tsgen/descriptor"
	"github.com/semohr/tsgen/typescript"
)

// MapPrimitive maps a source primitive kind to a target primitive token.
// The mapping is exact, not subtype-aware:
//
//	text      -> string
//	integer   -> number
//	float     -> number
//	boolean   -> boolean
//	bytes     -> Blob
//	timestamp -> Date
//	none      -> null (or undefined when NoneAsNull is disabled)
//	any       -> unknown (or any when AnyAsUnknown is disabled)
//
// The second return value is false when no mapping exists; the caller must
// attempt other recognizers before failing.
func MapPrimitive(kind descriptor.PrimitiveKind, cfg *typescript.Config) (typescript.PrimitiveKind, bool) {
	if cfg == nil {
		cfg = typescript.DefaultConfig()
	}
	switch kind {
	case descriptor.PrimitiveText:
		return typescript.String, true
	case descriptor.PrimitiveInteger, descriptor.PrimitiveFloat:
		return typescript.Number, true
	case descriptor.PrimitiveBoolean:
		return typescript.Boolean, true
	case descriptor.PrimitiveBytes:
		return typescript.Blob, true
	case descriptor.PrimitiveTimestamp:
		return typescript.Date, true
	case descriptor.PrimitiveNone:
		if cfg.NoneAsNull {
			return typescript.Null, true
		}
		return typescript.Undefined, true
	case descriptor.PrimitiveAny:
		if cfg.AnyAsUnknown {
			return typescript.Unknown, true
		}
		return typescript.Any, true
	default:
		return 0, false
	}
}
