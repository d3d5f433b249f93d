package generator

import (
	"errors"
	"math/bits"
)

// DefaultModulus ограничивает пространство кодов значением 2^40
// (~1.1 триллиона уникальных кодов).
const DefaultModulus = uint64(1) << 40

// DefaultMultiplier задаёт нечётный множитель перемешивания. Для модуля-степени
// двойки нечётность гарантирует биективность перестановки на [0, M).
const DefaultMultiplier = uint64(36779219)

var (
	// ErrBadModulus возвращается, если модуль равен нулю или превышает
	// ёмкость короткого кода.
	ErrBadModulus = errors.New("modulus must be in range (0, 62^7]")
	// ErrBadMultiplier возвращается для чётного множителя: такая
	// перестановка не биективна на домене-степени двойки.
	ErrBadMultiplier = errors.New("multiplier must be odd")
)

// Generator выдаёт детерминированный поток кодов-кандидатов. Счётчик
// принадлежит экземпляру, а не пакету, поэтому несколько генераторов могут
// сосуществовать и тестироваться независимо. Проверку занятости кода выполняет
// вызывающая сторона.
type Generator struct {
	seq        uint64
	modulus    uint64
	multiplier uint64
}

// New создаёт генератор с заданным модулем и множителем перемешивания.
func New(modulus, multiplier uint64) (*Generator, error) {
	if modulus == 0 || modulus > MaxEncodable+1 {
		return nil, ErrBadModulus
	}
	if multiplier%2 == 0 {
		return nil, ErrBadMultiplier
	}
	return &Generator{
		seq:        1,
		modulus:    modulus,
		multiplier: multiplier,
	}, nil
}

// NewDefault создаёт генератор со значениями DefaultModulus и
// DefaultMultiplier.
func NewDefault() *Generator {
	g, _ := New(DefaultModulus, DefaultMultiplier)
	return g
}

// Next возвращает очередной код-кандидат и сдвигает счётчик на единицу.
// Кандидат вычисляется как перемешанное значение счётчика по модулю modulus,
// закодированное в base62 фиксированной ширины. Произведение берётся в
// 128-битной арифметике, чтобы перемешивание оставалось точным и для модулей,
// не являющихся степенью двойки.
func (g *Generator) Next() string {
	id := g.seq % g.modulus
	hi, lo := bits.Mul64(id, g.multiplier)
	scrambled := bits.Rem64(hi, lo, g.modulus)
	g.seq++
	return Encode(scrambled)
}

// Seq возвращает текущее значение счётчика последовательности.
func (g *Generator) Seq() uint64 {
	return g.seq
}

// Space возвращает размер пространства кодов генератора.
func (g *Generator) Space() uint64 {
	return g.modulus
}
