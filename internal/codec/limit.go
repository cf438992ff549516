package codec

import "io"

// DefaultMaxDecodedSize bounds the total decompressed size of one archive.
const DefaultMaxDecodedSize int64 = 1 << 30

// Option tunes a codec.
type Option func(*options)

type options struct {
	maxDecodedSize int64
}

// WithMaxDecodedSize caps the total decompressed size of an archive at n
// bytes. Values below one keep the default.
func WithMaxDecodedSize(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxDecodedSize = n
		}
	}
}

func newOptions(opts []Option) options {
	o := options{maxDecodedSize: DefaultMaxDecodedSize}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// sizeBudget tracks how many decompressed bytes one Decode call may still
// read.
type sizeBudget struct {
	remaining int64
}

func (b *sizeBudget) read(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, b.remaining+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > b.remaining {
		return nil, ErrArchiveTooLarge
	}

	b.remaining -= int64(len(data))
	return data, nil
}

func (b *sizeBudget) discard(r io.Reader) error {
	n, err := io.Copy(io.Discard, io.LimitReader(r, b.remaining+1))
	if err != nil {
		return err
	}
	if n > b.remaining {
		return ErrArchiveTooLarge
	}

	b.remaining -= n
	return nil
}
