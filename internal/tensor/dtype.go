// Package tensor provides the N-dimensional indexing core: shapes and offsets,
// the multi-index codec, raw buffers and the axis iterator.
package tensor

import "reflect"

// DType is a constraint for supported element types.
type DType interface {
	Real | ~complex128
}

// Real is a constraint for real-valued element types.
type Real interface {
	~int32 | ~int64 | ~float32 | ~float64
}

// DataType represents runtime type information for raw buffers.
type DataType int

// Supported data types.
const (
	Int32 DataType = iota
	Int64
	Float32
	Float64
	Complex128
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Int32, Float32:
		return 4
	case Int64, Float64:
		return 8
	case Complex128:
		return 16
	default:
		panic("unknown data type")
	}
}

// IsComplex reports whether elements are (real, imaginary) pairs.
func (dt DataType) IsComplex() bool {
	return dt == Complex128
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex128:
		return "complex128"
	default:
		return "unknown"
	}
}

// TypeOf returns the DataType for a generic element type T.
// Named types resolve through their underlying kind.
func TypeOf[T DType]() DataType {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Int32:
		return Int32
	case reflect.Int64:
		return Int64
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	case reflect.Complex128:
		return Complex128
	default:
		panic("unsupported type")
	}
}
