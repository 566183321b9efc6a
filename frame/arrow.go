package frame

import (
	"fmt"
	"time"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
)

// ToRecord converts the frame to an Arrow record batch for handoff to
// Arrow-speaking consumers. Column types are taken from the first non-nil
// value; integer values widen to int64. Columns holding only nils become
// null string columns.
func (f *Frame) ToRecord(mem memory.Allocator) (arrow.Record, error) {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}

	fields := make([]arrow.Field, 0, len(f.order))
	arrs := make([]arrow.Array, 0, len(f.order))
	defer func() {
		for _, arr := range arrs {
			arr.Release()
		}
	}()

	for _, name := range f.order {
		values := f.columns[name]
		arr, dt, err := buildArray(mem, name, values)
		if err != nil {
			return nil, err
		}
		arrs = append(arrs, arr)
		fields = append(fields, arrow.Field{Name: name, Type: dt, Nullable: true})
	}

	schema := arrow.NewSchema(fields, nil)
	return array.NewRecord(schema, arrs, int64(f.Len())), nil
}

func buildArray(mem memory.Allocator, name string, values []interface{}) (arrow.Array, arrow.DataType, error) {
	var sample interface{}
	for _, v := range values {
		if v != nil {
			sample = v
			break
		}
	}

	switch sample.(type) {
	case string, nil:
		b := array.NewStringBuilder(mem)
		defer b.Release()
		for _, v := range values {
			if v == nil {
				b.AppendNull()
				continue
			}
			s, ok := v.(string)
			if !ok {
				return nil, nil, NewUnsupportedTypeError("ToRecord", fmt.Sprintf("%T in column %s", v, name))
			}
			b.Append(s)
		}
		return b.NewArray(), arrow.BinaryTypes.String, nil
	case int, int32, int64:
		b := array.NewInt64Builder(mem)
		defer b.Release()
		for _, v := range values {
			switch i := v.(type) {
			case nil:
				b.AppendNull()
			case int:
				b.Append(int64(i))
			case int32:
				b.Append(int64(i))
			case int64:
				b.Append(i)
			default:
				return nil, nil, NewUnsupportedTypeError("ToRecord", fmt.Sprintf("%T in column %s", v, name))
			}
		}
		return b.NewArray(), arrow.PrimitiveTypes.Int64, nil
	case float32:
		b := array.NewFloat32Builder(mem)
		defer b.Release()
		for _, v := range values {
			if v == nil {
				b.AppendNull()
				continue
			}
			fv, ok := v.(float32)
			if !ok {
				return nil, nil, NewUnsupportedTypeError("ToRecord", fmt.Sprintf("%T in column %s", v, name))
			}
			b.Append(fv)
		}
		return b.NewArray(), arrow.PrimitiveTypes.Float32, nil
	case float64:
		b := array.NewFloat64Builder(mem)
		defer b.Release()
		for _, v := range values {
			if v == nil {
				b.AppendNull()
				continue
			}
			fv, ok := v.(float64)
			if !ok {
				return nil, nil, NewUnsupportedTypeError("ToRecord", fmt.Sprintf("%T in column %s", v, name))
			}
			b.Append(fv)
		}
		return b.NewArray(), arrow.PrimitiveTypes.Float64, nil
	case bool:
		b := array.NewBooleanBuilder(mem)
		defer b.Release()
		for _, v := range values {
			if v == nil {
				b.AppendNull()
				continue
			}
			bv, ok := v.(bool)
			if !ok {
				return nil, nil, NewUnsupportedTypeError("ToRecord", fmt.Sprintf("%T in column %s", v, name))
			}
			b.Append(bv)
		}
		return b.NewArray(), arrow.FixedWidthTypes.Boolean, nil
	case time.Time:
		dt := arrow.FixedWidthTypes.Timestamp_ms.(*arrow.TimestampType)
		b := array.NewTimestampBuilder(mem, dt)
		defer b.Release()
		for _, v := range values {
			if v == nil {
				b.AppendNull()
				continue
			}
			tv, ok := v.(time.Time)
			if !ok {
				return nil, nil, NewUnsupportedTypeError("ToRecord", fmt.Sprintf("%T in column %s", v, name))
			}
			b.Append(arrow.Timestamp(tv.UnixMilli()))
		}
		return b.NewArray(), dt, nil
	case []float32:
		b := array.NewListBuilder(mem, arrow.PrimitiveTypes.Float32)
		defer b.Release()
		vb := b.ValueBuilder().(*array.Float32Builder)
		for _, v := range values {
			if v == nil {
				b.AppendNull()
				continue
			}
			vec, ok := v.([]float32)
			if !ok {
				return nil, nil, NewUnsupportedTypeError("ToRecord", fmt.Sprintf("%T in column %s", v, name))
			}
			b.Append(true)
			for _, e := range vec {
				vb.Append(e)
			}
		}
		return b.NewArray(), arrow.ListOf(arrow.PrimitiveTypes.Float32), nil
	case []float64:
		b := array.NewListBuilder(mem, arrow.PrimitiveTypes.Float64)
		defer b.Release()
		vb := b.ValueBuilder().(*array.Float64Builder)
		for _, v := range values {
			if v == nil {
				b.AppendNull()
				continue
			}
			vec, ok := v.([]float64)
			if !ok {
				return nil, nil, NewUnsupportedTypeError("ToRecord", fmt.Sprintf("%T in column %s", v, name))
			}
			b.Append(true)
			for _, e := range vec {
				vb.Append(e)
			}
		}
		return b.NewArray(), arrow.ListOf(arrow.PrimitiveTypes.Float64), nil
	default:
		return nil, nil, NewUnsupportedTypeError("ToRecord", fmt.Sprintf("%T in column %s", sample, name))
	}
}

// FromRecord converts an Arrow record batch back to a Frame. Null slots
// become nil values.
func FromRecord(rec arrow.Record) (*Frame, error) {
	f := New()
	for i := 0; i < int(rec.NumCols()); i++ {
		name := rec.ColumnName(i)
		values, err := readArray(rec.Column(i), name)
		if err != nil {
			return nil, err
		}
		if err := f.AddColumn(name, values); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func readArray(arr arrow.Array, name string) ([]interface{}, error) {
	values := make([]interface{}, arr.Len())
	switch col := arr.(type) {
	case *array.String:
		for i := 0; i < col.Len(); i++ {
			if !col.IsNull(i) {
				values[i] = col.Value(i)
			}
		}
	case *array.Int64:
		for i := 0; i < col.Len(); i++ {
			if !col.IsNull(i) {
				values[i] = col.Value(i)
			}
		}
	case *array.Int32:
		for i := 0; i < col.Len(); i++ {
			if !col.IsNull(i) {
				values[i] = col.Value(i)
			}
		}
	case *array.Float32:
		for i := 0; i < col.Len(); i++ {
			if !col.IsNull(i) {
				values[i] = col.Value(i)
			}
		}
	case *array.Float64:
		for i := 0; i < col.Len(); i++ {
			if !col.IsNull(i) {
				values[i] = col.Value(i)
			}
		}
	case *array.Boolean:
		for i := 0; i < col.Len(); i++ {
			if !col.IsNull(i) {
				values[i] = col.Value(i)
			}
		}
	case *array.Timestamp:
		unit := col.DataType().(*arrow.TimestampType).Unit
		for i := 0; i < col.Len(); i++ {
			if !col.IsNull(i) {
				values[i] = col.Value(i).ToTime(unit).UTC()
			}
		}
	case *array.List:
		for i := 0; i < col.Len(); i++ {
			if col.IsNull(i) {
				continue
			}
			start, end := col.ValueOffsets(i)
			switch elems := col.ListValues().(type) {
			case *array.Float32:
				vec := make([]float32, 0, end-start)
				for j := start; j < end; j++ {
					vec = append(vec, elems.Value(int(j)))
				}
				values[i] = vec
			case *array.Float64:
				vec := make([]float64, 0, end-start)
				for j := start; j < end; j++ {
					vec = append(vec, elems.Value(int(j)))
				}
				values[i] = vec
			default:
				return nil, NewUnsupportedTypeError("FromRecord", fmt.Sprintf("list<%T> in column %s", elems, name))
			}
		}
	default:
		return nil, NewUnsupportedTypeError("FromRecord", fmt.Sprintf("%T in column %s", arr, name))
	}
	return values, nil
}
