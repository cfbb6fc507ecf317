package kvdb

import (
	"crypto/rand"
	"encoding/binary"
	"hash/fnv"
	"math"
	"math/bits"
)

// BloomFilter 저장된 시퀀스 이름의 멤버십 필터. 거짓 음성 없음.
type BloomFilter struct {
	bitArray []uint64
	size     uint64
	numHash  uint
	numItems uint64
	seed     [8]byte
}

// NewBloomFilter 예상 아이템 수와 목표 오탐률로 크기를 정함
func NewBloomFilter(expectedItems uint64, falsePositiveRate float64) *BloomFilter {
	expectedItems = max(expectedItems, 1)
	size := max(uint64(-float64(expectedItems)*math.Log(falsePositiveRate)/(math.Log(2)*math.Log(2))), 64)
	numHash := min(max(uint(float64(size)/float64(expectedItems)*math.Log(2)), 1), 15)

	bf := &BloomFilter{
		bitArray: make([]uint64, (size+63)/64),
		size:     size,
		numHash:  numHash,
	}
	rand.Read(bf.seed[:])
	return bf
}

// hash 이중 해싱 (h1 + i*h2)
func (bf *BloomFilter) hash(data []byte) (uint64, uint64) {
	h := fnv.New64a()
	h.Write(data)
	h.Write(bf.seed[:])
	hash1 := h.Sum64()

	hash2 := hash1>>17 ^ hash1<<47 ^ 0x9e3779b97f4a7c15
	if hash2%2 == 0 {
		hash2++
	}
	return hash1, hash2
}

func (bf *BloomFilter) Add(data []byte) {
	h1, h2 := bf.hash(data)
	for i := uint64(0); i < uint64(bf.numHash); i++ {
		pos := (h1 + i*h2) % bf.size
		bf.bitArray[pos/64] |= 1 << (pos % 64)
	}
	bf.numItems++
}

func (bf *BloomFilter) Contains(data []byte) bool {
	h1, h2 := bf.hash(data)
	for i := uint64(0); i < uint64(bf.numHash); i++ {
		pos := (h1 + i*h2) % bf.size
		if bf.bitArray[pos/64]&(1<<(pos%64)) == 0 {
			return false
		}
	}
	return true
}

// Stats 켜진 비트 수, 채움 비율, 추정 오탐률
func (bf *BloomFilter) Stats() (uint64, float64, float64) {
	setBits := uint64(0)
	for _, word := range bf.bitArray {
		setBits += uint64(bits.OnesCount64(word))
	}
	fillRatio := float64(setBits) / float64(bf.size)
	return setBits, fillRatio, math.Pow(fillRatio, float64(bf.numHash))
}

// Items Add 호출 횟수
func (bf *BloomFilter) Items() uint64 {
	return bf.numItems
}

// setSeed 테스트에서 시드 고정용. Add 이전에만 호출.
func (bf *BloomFilter) setSeed(seed uint64) {
	binary.LittleEndian.PutUint64(bf.seed[:], seed)
}
