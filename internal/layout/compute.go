package layout

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// AlignTo rounds offset up to the next multiple of align.
// align must be a power of two; zero leaves offset unchanged.
func AlignTo(offset, align uint64) uint64 {
	if align == 0 {
		return offset
	}

	return (offset + align - 1) &^ (align - 1)
}

// IsPowerOfTwo reports whether n is a non-zero power of two.
func IsPowerOfTwo(n uint64) bool {
	return n != 0 && n&(n-1) == 0
}

// Validate checks the preconditions of Compute without computing anything.
func Validate(rec RecordSpec) error {
	if len(rec.Fields) == 0 {
		return invalid(rec.Name, "", "record has no fields")
	}

	seen := make(map[string]struct{}, len(rec.Fields))

	for i, f := range rec.Fields {
		if f.Name == "" {
			return invalid(rec.Name, "", "field #%d has no name", i)
		}

		if _, ok := seen[f.Name]; ok {
			return invalid(rec.Name, f.Name, "duplicate field name")
		}

		seen[f.Name] = struct{}{}

		if f.Size == 0 {
			return invalid(rec.Name, f.Name, "size must be greater than zero")
		}

		if !IsPowerOfTwo(f.Align) {
			return invalid(rec.Name, f.Name, "alignment %d is not a power of two", f.Align)
		}
	}

	return nil
}

// Compute returns the layout of rec. It is a pure function of its input.
func Compute(rec RecordSpec) (*Result, error) {
	if err := Validate(rec); err != nil {
		return nil, err
	}

	res := &Result{
		Record: rec.Name,
		Align:  1,
		Fields: make([]FieldLayout, 0, len(rec.Fields)),
	}

	var offset uint64

	for _, f := range rec.Fields {
		aligned := AlignTo(offset, f.Align)
		if aligned < offset || aligned+f.Size < aligned {
			return nil, invalid(rec.Name, f.Name, "record size overflows")
		}

		res.Fields = append(res.Fields, FieldLayout{
			Name:    f.Name,
			Offset:  aligned,
			Size:    f.Size,
			Align:   f.Align,
			Padding: aligned - offset,
		})

		res.Align = max(res.Align, f.Align)
		offset = aligned + f.Size
	}

	res.Size = AlignTo(offset, res.Align)
	if res.Size < offset {
		return nil, invalid(rec.Name, "", "record size overflows")
	}

	res.TrailingPadding = res.Size - offset

	return res, nil
}

// ComputeAll computes the layouts of independent records concurrently.
// Results are returned in input order. The first error cancels the rest.
func ComputeAll(ctx context.Context, recs []RecordSpec) ([]*Result, error) {
	results := make([]*Result, len(recs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range recs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := Compute(recs[i])
			if err != nil {
				return err
			}

			results[i] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
