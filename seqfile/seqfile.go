// Package seqfile 는 한 줄에 정수 하나씩 적힌 텍스트 파일을 읽고 쓴다.
package seqfile

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"ferricsort/sort"
)

const bufferSize = 64 * 1024 // 64KB 버퍼

// File 파일 이름/경로와 파싱된 정수 목록
type File struct {
	Name    string
	Path    string
	Content []int64
}

// Read 파일을 읽어 정수 목록으로 파싱. 파싱되지 않는 줄은 건너뜀.
func Read(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	// 파일 크기 기반으로 슬라이스 미리 할당 (평균 5자리 + 개행 가정)
	var content []int64
	if info, err := f.Stat(); err == nil {
		content = make([]int64, 0, info.Size()/6)
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, bufferSize), bufio.MaxScanTokenSize)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		num, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			continue
		}
		content = append(content, num)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	return &File{
		Name:    filepath.Base(path),
		Path:    path,
		Content: content,
	}, nil
}

// Write 한 줄에 하나씩 기록. newName 이 비어 있으면 원래 경로에 덮어씀.
func (f *File) Write(newName string) error {
	path := f.Path
	if newName != "" {
		path = newName
	}
	return WriteInts(path, f.Content)
}

// WriteInts 정수 목록을 path 에 한 줄씩 기록
func WriteInts(path string, data []int64) error {
	out, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}

	writer := bufio.NewWriterSize(out, bufferSize)
	buf := make([]byte, 0, 24)
	for _, num := range data {
		buf = strconv.AppendInt(buf[:0], num, 10)
		buf = append(buf, '\n')
		if _, err := writer.Write(buf); err != nil {
			out.Close()
			return errors.Wrapf(err, "write %s", path)
		}
	}

	if err := writer.Flush(); err != nil {
		out.Close()
		return errors.Wrapf(err, "flush %s", path)
	}
	return errors.Wrapf(out.Close(), "close %s", path)
}

// Sort 퀵소트로 정렬한 내용을 가진 새 File 반환
func (f *File) Sort() *File {
	return f.SortWith(sort.QuickSort)
}

// SortWith 지정 엔진으로 정렬한 새 File 반환. 원본 내용은 그대로.
func (f *File) SortWith(engine sort.Engine) *File {
	return &File{
		Name:    f.Name,
		Path:    f.Path,
		Content: sort.SortedWith(f.Content, engine),
	}
}
