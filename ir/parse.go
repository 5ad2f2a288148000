// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ir

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/gogpu/spvlint/spirv"
)

// Decode errors
var (
	ErrTooShort     = errors.New("binary shorter than a SPIR-V header")
	ErrBadMagic     = errors.New("invalid SPIR-V magic number")
	ErrBadWordCount = errors.New("instruction with invalid word count")
	ErrTruncated    = errors.New("instruction extends past end of binary")
	ErrMalformed    = errors.New("malformed module structure")
)

// WordsFromBytes converts a little-endian SPIR-V binary to its word
// stream. The length must be a multiple of four bytes.
func WordsFromBytes(data []byte) ([]uint32, error) {
	if len(data)%4 != 0 {
		return nil, errors.Wrapf(ErrTruncated, "binary length %d is not word-aligned", len(data))
	}
	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[i*4:])
	}
	return words, nil
}

// BuildModule decodes a SPIR-V word stream into a Module.
//
// The decoder accepts the Vulkan 1.2 environment encoding. It checks
// the header, decodes each instruction, and partitions the stream into
// module-scope sections and per-function basic blocks. It does not
// validate semantic rules beyond what the partitioning needs; the
// input is expected to have passed the SPIR-V validator.
func BuildModule(words []uint32) (*Module, error) {
	if len(words) < spirv.HeaderWords {
		return nil, errors.Wrapf(ErrTooShort, "got %d words", len(words))
	}
	if words[0] != spirv.MagicNumber {
		return nil, errors.Wrapf(ErrBadMagic, "got 0x%08x", words[0])
	}

	version := words[1]
	m := &Module{
		Version: spirv.Version{Major: uint8(version >> 16), Minor: uint8(version >> 8)},
		Bound:   words[3],
	}

	var (
		fn    *Function
		block *Block
	)
	offset := spirv.HeaderWords
	for offset < len(words) {
		first := words[offset]
		op := spirv.Op(first & 0xffff)
		count := int(first >> 16)
		if count == 0 {
			return nil, errors.Wrapf(ErrBadWordCount, "at word %d", offset)
		}
		if offset+count > len(words) {
			return nil, errors.Wrapf(ErrTruncated, "at word %d: count %d", offset, count)
		}

		in := &Instruction{Opcode: op}
		operands := words[offset+1 : offset+count]
		hasType, hasResult := op.Layout()
		if hasType {
			if len(operands) < 2 {
				return nil, errors.Wrapf(ErrBadWordCount, "%s at word %d", op, offset)
			}
			in.TypeID = operands[0]
			in.ResultID = operands[1]
			operands = operands[2:]
		} else if hasResult {
			if len(operands) < 1 {
				return nil, errors.Wrapf(ErrBadWordCount, "%s at word %d", op, offset)
			}
			in.ResultID = operands[0]
			operands = operands[1:]
		}
		in.Operands = operands
		offset += count

		switch op {
		case spirv.OpFunction:
			if fn != nil {
				return nil, errors.Wrap(ErrMalformed, "nested OpFunction")
			}
			fn = &Function{Def: in, blocksByID: make(map[uint32]*Block)}
		case spirv.OpFunctionParameter:
			if fn == nil {
				return nil, errors.Wrap(ErrMalformed, "OpFunctionParameter outside function")
			}
			fn.Params = append(fn.Params, in)
		case spirv.OpFunctionEnd:
			if fn == nil {
				return nil, errors.Wrap(ErrMalformed, "OpFunctionEnd outside function")
			}
			if block != nil {
				return nil, errors.Wrap(ErrMalformed, "OpFunctionEnd inside block")
			}
			m.Functions = append(m.Functions, fn)
			fn = nil
		case spirv.OpLabel:
			if fn == nil {
				return nil, errors.Wrap(ErrMalformed, "OpLabel outside function")
			}
			block = &Block{Label: in}
			fn.Blocks = append(fn.Blocks, block)
			fn.blocksByID[in.ResultID] = block
		case spirv.OpDecorate, spirv.OpMemberDecorate, spirv.OpDecorationGroup, spirv.OpGroupDecorate:
			m.Annotations = append(m.Annotations, in)
		case spirv.OpName, spirv.OpMemberName, spirv.OpString, spirv.OpSource,
			spirv.OpSourceContinued, spirv.OpSourceExtension, spirv.OpLine:
			m.Debug = append(m.Debug, in)
		case spirv.OpCapability, spirv.OpExtension, spirv.OpExtInstImport,
			spirv.OpMemoryModel, spirv.OpEntryPoint, spirv.OpExecutionMode:
			m.Preamble = append(m.Preamble, in)
		default:
			switch {
			case block != nil:
				block.Body = append(block.Body, in)
				if op.IsTerminator() {
					block = nil
				}
			case fn != nil:
				return nil, errors.Wrapf(ErrMalformed, "%s between blocks", op)
			default:
				m.TypesValues = append(m.TypesValues, in)
			}
		}
	}
	if fn != nil {
		return nil, errors.Wrap(ErrMalformed, "missing OpFunctionEnd")
	}
	return m, nil
}
