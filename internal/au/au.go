// Package au 解码 Sun/NeXT 音频文件（.au）
//
// 输出为 Ebitengine 音频播放器使用的格式：16 位有符号小端、双声道，
// 并按需线性插值重采样到音频上下文的采样率。
package au

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	magic         = 0x2e736e64 // ".snd"
	headerSize    = 24
	encodingULaw  = 1 // 8 位 μ-law
	encodingPCM16 = 3 // 16 位大端线性 PCM

	bytesPerFrame = 4 // 输出：16 位 × 2 声道
)

// Header .au 文件头
type Header struct {
	DataOffset uint32
	DataSize   uint32
	Encoding   uint32
	SampleRate uint32
	Channels   uint32
}

// Stream 解码后的 PCM 流，实现 io.ReadSeeker
type Stream struct {
	data       []byte
	sampleRate int
	offset     int64
}

// ParseHeader 解析并校验文件头
func ParseHeader(data []byte) (Header, error) {
	if len(data) < headerSize {
		return Header{}, fmt.Errorf("au file too short: %d bytes", len(data))
	}
	if m := binary.BigEndian.Uint32(data[0:4]); m != magic {
		return Header{}, fmt.Errorf("invalid au magic: 0x%08x", m)
	}

	h := Header{
		DataOffset: binary.BigEndian.Uint32(data[4:8]),
		DataSize:   binary.BigEndian.Uint32(data[8:12]),
		Encoding:   binary.BigEndian.Uint32(data[12:16]),
		SampleRate: binary.BigEndian.Uint32(data[16:20]),
		Channels:   binary.BigEndian.Uint32(data[20:24]),
	}

	switch {
	case h.Encoding != encodingULaw && h.Encoding != encodingPCM16:
		return Header{}, fmt.Errorf("unsupported au encoding: %d", h.Encoding)
	case h.Channels < 1 || h.Channels > 2:
		return Header{}, fmt.Errorf("unsupported au channel count: %d", h.Channels)
	case h.SampleRate == 0:
		return Header{}, fmt.Errorf("invalid au sample rate: 0")
	case h.DataOffset < headerSize || int(h.DataOffset) > len(data):
		return Header{}, fmt.Errorf("invalid au data offset: %d (file size %d)", h.DataOffset, len(data))
	}
	return h, nil
}

// Decode 读取整个 .au 文件并解码
//
// 参数:
//   - r: 文件内容
//   - sampleRate: 目标采样率，<= 0 时保持文件原采样率
//
// 返回:
//   - *Stream: 双声道 16 位 PCM 流
//   - error: 文件格式不支持或数据损坏
func Decode(r io.Reader, sampleRate int) (*Stream, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read au file: %w", err)
	}
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	body := data[h.DataOffset:]
	// 0xffffffff 表示长度未知
	if h.DataSize != 0xffffffff && int(h.DataSize) < len(body) {
		body = body[:h.DataSize]
	}

	left, right := decodeSamples(body, h.Encoding, int(h.Channels))

	rate := int(h.SampleRate)
	if sampleRate > 0 && sampleRate != rate {
		left = resample(left, rate, sampleRate)
		right = resample(right, rate, sampleRate)
		rate = sampleRate
	}

	out := make([]byte, len(left)*bytesPerFrame)
	for i := range left {
		binary.LittleEndian.PutUint16(out[i*4:], uint16(left[i]))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(right[i]))
	}
	return &Stream{data: out, sampleRate: rate}, nil
}

// decodeSamples 把原始数据拆成左右声道，单声道时两个声道相同
func decodeSamples(body []byte, encoding uint32, channels int) (left, right []int16) {
	var mono []int16
	switch encoding {
	case encodingULaw:
		mono = make([]int16, len(body))
		for i, b := range body {
			mono[i] = ulawToPCM(b)
		}
	case encodingPCM16:
		mono = make([]int16, len(body)/2)
		for i := range mono {
			mono[i] = int16(binary.BigEndian.Uint16(body[i*2:]))
		}
	}

	if channels == 1 {
		return mono, mono
	}
	frames := len(mono) / 2
	left = make([]int16, frames)
	right = make([]int16, frames)
	for i := 0; i < frames; i++ {
		left[i] = mono[i*2]
		right[i] = mono[i*2+1]
	}
	return left, right
}

// ulawToPCM G.711 μ-law 解码
func ulawToPCM(u byte) int16 {
	u = ^u
	exponent := (u >> 4) & 0x07
	mantissa := u & 0x0f
	sample := ((int(mantissa) << 3) + 0x84) << exponent
	sample -= 0x84
	if u&0x80 != 0 {
		return int16(-sample)
	}
	return int16(sample)
}

// resample 线性插值重采样
func resample(samples []int16, from, to int) []int16 {
	if len(samples) == 0 {
		return samples
	}
	n := int(int64(len(samples)) * int64(to) / int64(from))
	out := make([]int16, n)
	step := float64(from) / float64(to)
	for i := range out {
		pos := float64(i) * step
		j := int(pos)
		if j >= len(samples)-1 {
			out[i] = samples[len(samples)-1]
			continue
		}
		frac := pos - float64(j)
		out[i] = int16(float64(samples[j])*(1-frac) + float64(samples[j+1])*frac)
	}
	return out
}

// Read 实现 io.Reader
func (s *Stream) Read(p []byte) (int, error) {
	if s.offset >= int64(len(s.data)) {
		return 0, io.EOF
	}
	n := copy(p, s.data[s.offset:])
	s.offset += int64(n)
	return n, nil
}

// Seek 实现 io.Seeker
func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	var next int64
	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = s.offset + offset
	case io.SeekEnd:
		next = int64(len(s.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}
	if next < 0 {
		return 0, fmt.Errorf("negative position: %d", next)
	}
	s.offset = next
	return next, nil
}

// Length 解码后数据的字节数
func (s *Stream) Length() int64 {
	return int64(len(s.data))
}

// SampleRate 输出采样率
func (s *Stream) SampleRate() int {
	return s.sampleRate
}
