package kvdb

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"
)

// 키 구조
//
//	m/<name>                 -> 원소 개수 (8바이트 빅엔디안)
//	c/<name>/<chunk index>   -> 최대 ChunkSize 개의 int64 (빅엔디안)
var (
	metaPrefix  = []byte("m/")
	chunkPrefix = []byte("c/")
)

func metaKey(name string) []byte {
	key := make([]byte, 0, len(metaPrefix)+len(name))
	key = append(key, metaPrefix...)
	return append(key, name...)
}

func chunkKey(name string, idx uint64) []byte {
	key := make([]byte, 0, len(chunkPrefix)+len(name)+1+8)
	key = append(key, chunkPrefix...)
	key = append(key, name...)
	key = append(key, '/')
	return binary.BigEndian.AppendUint64(key, idx)
}

// numChunks n 개 원소에 필요한 청크 수
func numChunks(n uint64) uint64 {
	return (n + ChunkSize - 1) / ChunkSize
}

func encodeCount(n uint64) []byte {
	return binary.BigEndian.AppendUint64(nil, n)
}

func decodeCount(b []byte) (uint64, error) {
	if len(b) != 8 {
		return 0, errors.Newf("corrupt count: %d bytes", len(b))
	}
	return binary.BigEndian.Uint64(b), nil
}

func encodeChunk(vals []int64) []byte {
	buf := make([]byte, len(vals)*8)
	for i, v := range vals {
		binary.BigEndian.PutUint64(buf[i*8:], uint64(v))
	}
	return buf
}

// decodeChunk dst 뒤에 이어 붙임
func decodeChunk(dst []int64, b []byte) ([]int64, error) {
	if len(b)%8 != 0 {
		return dst, errors.Newf("corrupt chunk: %d bytes", len(b))
	}
	for i := 0; i < len(b); i += 8 {
		dst = append(dst, int64(binary.BigEndian.Uint64(b[i:])))
	}
	return dst, nil
}

// prefixEnd prefix 로 시작하는 키들의 배타적 상한
func prefixEnd(prefix []byte) []byte {
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}
