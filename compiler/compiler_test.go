package compiler

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ubf/bytecode"
)

// listing returns the instructions of a chunk.
func listing(chunk *bytecode.Chunk) (list []bytecode.Instruction) {
	for _, ins := range chunk.Instructions() {
		list = append(list, ins)
	}
	return
}

func TestCompile_Runs(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		symbol string
		op     bytecode.Opcode
	}){
		{"+", bytecode.OP_INC},
		{"-", bytecode.OP_DEC},
		{"<", bytecode.OP_LEFT},
		{">", bytecode.OP_RIGHT},
		{".", bytecode.OP_PUT},
		{",", bytecode.OP_GET},
	}

	for _, entry := range table {
		for _, n := range []int{1, 2, 17, 254, 255} {
			chunk, err := Compile([]byte(strings.Repeat(entry.symbol, n)))
			assert.NoError(err, entry.symbol)
			assert.Equal([]bytecode.Instruction{
				{Op: entry.op, Operand: byte(n)},
				{Op: bytecode.OP_HALT},
			}, listing(chunk), "%v x %d", entry.symbol, n)
		}

		chunk, err := Compile([]byte(strings.Repeat(entry.symbol, 300)))
		assert.NoError(err, entry.symbol)
		assert.Equal([]bytecode.Instruction{
			{Op: entry.op, Operand: 255},
			{Op: entry.op, Operand: 45},
			{Op: bytecode.OP_HALT},
		}, listing(chunk), entry.symbol)

		chunk, err = Compile([]byte(strings.Repeat(entry.symbol, 510)))
		assert.NoError(err, entry.symbol)
		assert.Equal([]bytecode.Instruction{
			{Op: entry.op, Operand: 255},
			{Op: entry.op, Operand: 255},
			{Op: bytecode.OP_HALT},
		}, listing(chunk), entry.symbol)
	}
}

func TestCompile_Comments(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		source string
		expect []bytecode.Instruction
	}){
		{"empty", "", []bytecode.Instruction{{Op: bytecode.OP_HALT}}},
		{"only_comments", "hello world\n", []bytecode.Instruction{{Op: bytecode.OP_HALT}}},
		{"leading", "abc+++", []bytecode.Instruction{
			{Op: bytecode.OP_INC, Operand: 3},
			{Op: bytecode.OP_HALT},
		}},
		{"trailing", ">>>>\t# move", []bytecode.Instruction{
			{Op: bytecode.OP_RIGHT, Operand: 4},
			{Op: bytecode.OP_HALT},
		}},
		{"mixed", "++ -- <<x>.", []bytecode.Instruction{
			{Op: bytecode.OP_INC, Operand: 2},
			{Op: bytecode.OP_DEC, Operand: 2},
			{Op: bytecode.OP_LEFT, Operand: 2},
			{Op: bytecode.OP_RIGHT, Operand: 1},
			{Op: bytecode.OP_PUT, Operand: 1},
			{Op: bytecode.OP_HALT},
		}},
		{"split_run", "++x++", []bytecode.Instruction{
			{Op: bytecode.OP_INC, Operand: 2},
			{Op: bytecode.OP_INC, Operand: 2},
			{Op: bytecode.OP_HALT},
		}},
		{"alternating", "+-+", []bytecode.Instruction{
			{Op: bytecode.OP_INC, Operand: 1},
			{Op: bytecode.OP_DEC, Operand: 1},
			{Op: bytecode.OP_INC, Operand: 1},
			{Op: bytecode.OP_HALT},
		}},
	}

	for _, entry := range table {
		chunk, err := Compile([]byte(entry.source))
		assert.NoError(err, entry.name)
		assert.Equal(entry.expect, listing(chunk), entry.name)
	}
}

func TestCompile_Loop(t *testing.T) {
	assert := assert.New(t)

	chunk, err := Compile([]byte("[-]"))
	assert.NoError(err)

	assert.Equal([]bytecode.Instruction{
		{Op: bytecode.OP_JZ, Operand: 1},
		{Op: bytecode.OP_DEC, Operand: 1},
		{Op: bytecode.OP_JNZ, Operand: 0},
		{Op: bytecode.OP_HALT},
	}, listing(chunk))

	// JZ resolves past the JNZ, JNZ resolves back to the JZ.
	target, ok := chunk.Target(1)
	assert.True(ok)
	assert.Equal(6, target)

	target, ok = chunk.Target(0)
	assert.True(ok)
	assert.Equal(0, target)
}

func TestCompile_Nested(t *testing.T) {
	assert := assert.New(t)

	chunk, err := Compile([]byte("+[>[-]<-]"))
	assert.NoError(err)

	assert.Equal([]bytecode.Instruction{
		{Op: bytecode.OP_INC, Operand: 1},   // 0
		{Op: bytecode.OP_JZ, Operand: 3},    // 2
		{Op: bytecode.OP_RIGHT, Operand: 1}, // 4
		{Op: bytecode.OP_JZ, Operand: 2},    // 6
		{Op: bytecode.OP_DEC, Operand: 1},   // 8
		{Op: bytecode.OP_JNZ, Operand: 1},   // 10
		{Op: bytecode.OP_LEFT, Operand: 1},  // 12
		{Op: bytecode.OP_DEC, Operand: 1},   // 14
		{Op: bytecode.OP_JNZ, Operand: 0},   // 16
		{Op: bytecode.OP_HALT},              // 18
	}, listing(chunk))

	assert.Equal([]int{2, 6, 12, 18}, chunk.Offsets())
}

func TestCompile_SiblingsShareTarget(t *testing.T) {
	assert := assert.New(t)

	one, err := Compile([]byte("[-]"))
	assert.NoError(err)
	assert.Equal(2, len(one.Offsets()))

	// The second loop's JZ sits where the first loop exits.
	two, err := Compile([]byte("[-][-]"))
	assert.NoError(err)
	assert.Equal(3, len(two.Offsets()))
	assert.Equal([]int{0, 6, 12}, two.Offsets())

	list := listing(two)
	assert.Equal(bytecode.Instruction{Op: bytecode.OP_JZ, Operand: 1}, list[0])
	assert.Equal(bytecode.Instruction{Op: bytecode.OP_JNZ, Operand: 0}, list[2])
	assert.Equal(bytecode.Instruction{Op: bytecode.OP_JZ, Operand: 2}, list[3])
	assert.Equal(bytecode.Instruction{Op: bytecode.OP_JNZ, Operand: 1}, list[5])
}

func TestCompile_Unbalanced(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		source string
		offset int
		line   int
		column int
	}){
		{"open", "[", 0, 1, 1},
		{"open_body", "+[-", 1, 1, 2},
		{"open_nested", "[[-]", 0, 1, 1},
		{"close", "]", 0, 1, 1},
		{"close_after", "[-]]", 3, 1, 4},
		{"close_line", "+\n+\n  ]", 6, 3, 3},
		{"open_line", "++\n[[-]\n", 3, 2, 1},
	}

	for _, entry := range table {
		chunk, err := Compile([]byte(entry.source))
		assert.Nil(chunk, entry.name)
		assert.True(errors.Is(err, ErrUnbalancedLoop), entry.name)

		var syntax *ErrSyntax
		if assert.True(errors.As(err, &syntax), entry.name) {
			assert.Equal(entry.offset, syntax.Offset, entry.name)
			assert.Equal(entry.line, syntax.Line, entry.name)
			assert.Equal(entry.column, syntax.Column, entry.name)
		}
	}
}

func TestCompile_JumpTargets(t *testing.T) {
	assert := assert.New(t)

	// n sibling loops need n+1 targets.
	chunk, err := Compile([]byte(strings.Repeat("[]", bytecode.OFFSET_LIMIT-1)))
	assert.NoError(err)
	assert.Equal(bytecode.OFFSET_LIMIT, len(chunk.Offsets()))

	chunk, err = Compile([]byte(strings.Repeat("[]", bytecode.OFFSET_LIMIT)))
	assert.Nil(chunk)
	assert.True(errors.Is(err, ErrTooManyJumpTargets))
	assert.True(errors.Is(err, bytecode.ErrOffsetFull))

	var syntax *ErrSyntax
	assert.True(errors.As(err, &syntax))
	assert.Equal((bytecode.OFFSET_LIMIT-1)*2, syntax.Offset)
}

func TestCompile_Reuse(t *testing.T) {
	assert := assert.New(t)

	cc := &Compiler{}

	a, err := cc.Compile([]byte("[-]"))
	assert.NoError(err)
	b, err := cc.Compile([]byte("+"))
	assert.NoError(err)

	assert.Equal(8, a.Len())
	assert.Equal(4, b.Len())
	assert.Empty(b.Offsets())
}

func FuzzCompile(f *testing.F) {
	f.Add([]byte("++[>+<-]>."))
	f.Add([]byte("[[[]]]"))
	f.Add([]byte("]["))
	f.Add([]byte("hello, world."))

	f.Fuzz(func(t *testing.T, source []byte) {
		assert := assert.New(t)

		chunk, err := Compile(source)
		if err != nil {
			assert.Nil(chunk)
			assert.True(errors.Is(err, ErrUnbalancedLoop) || errors.Is(err, ErrTooManyJumpTargets))
			return
		}

		list := listing(chunk)
		assert.Equal(bytecode.Instruction{Op: bytecode.OP_HALT}, list[len(list)-1])

		// Run lengths sum to the number of symbols in the source.
		counts := map[bytecode.Opcode]int{}
		for _, ins := range list {
			assert.True(ins.Op.Valid())
			if ins.Op.IsJump() {
				target, ok := chunk.Target(ins.Operand)
				assert.True(ok)
				assert.True(target >= 0 && target < chunk.Len())
				assert.Equal(0, target%bytecode.INSTRUCTION_SIZE)
				continue
			}
			if ins.Op != bytecode.OP_HALT {
				assert.NotZero(ins.Operand)
				counts[ins.Op] += int(ins.Operand)
			}
		}
		for symbol, op := range symbolMap {
			assert.Equal(strings.Count(string(source), string(symbol)), counts[op])
		}
	})
}
