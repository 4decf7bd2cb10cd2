package completion

import (
	"go.uber.org/zap"

	"github.com/Tiamat-Tech/nushell/internal/engine"
	"github.com/Tiamat-Tech/nushell/internal/lang/lexer"
)

// mapValueCompletions normalizes the heterogeneous values a completer
// closure may return into suggestions. Strings become display text directly;
// records are scanned for value, description and style fields, with unknown
// fields ignored. Nothing here is an error: a record without a usable value
// maps to an empty suggestion.
func mapValueCompletions(ctx *requestContext, items []engine.Value, span lexer.Span) []Suggestion {
	out := make([]Suggestion, 0, len(items))
	for _, item := range items {
		out = append(out, suggestionFromValue(ctx, item, span))
	}
	return out
}

func suggestionFromValue(ctx *requestContext, item engine.Value, span lexer.Span) Suggestion {
	sug := Suggestion{Span: span, Kind: KindValue}

	record, ok := item.(*engine.RecordValue)
	if !ok {
		if text, ok := engine.CoerceString(item); ok {
			sug.Value = text
		} else {
			ctx.log.Debug("completion value has no string form",
				zap.String("type", item.Type().String()))
		}
		return sug
	}

	if v, ok := record.Get("value"); ok {
		if text, ok := engine.CoerceString(v); ok {
			sug.Value = text
		}
	}
	if v, ok := record.Get("description"); ok {
		if text, ok := engine.CoerceString(v); ok {
			sug.Description = text
		}
	}
	if v, ok := record.Get("style"); ok {
		sug.Style = styleFromValue(v)
	}
	return sug
}
