package generator

import (
	"errors"
	"strings"
)

// alphabet задаёт 62-символьный алфавит коротких кодов: цифры, строчные и
// заглавные латинские буквы, в порядке возрастания значения разряда.
const alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// CodeLength задаёт фиксированную длину короткого кода в символах.
const CodeLength = 7

// base задаёт основание системы счисления короткого кода.
const base = uint64(len(alphabet))

// MaxEncodable равно наибольшему значению, представимому кодом из CodeLength
// символов (62^7 - 1).
const MaxEncodable = 62*62*62*62*62*62*62 - 1

// ErrInvalidCode возвращается при декодировании строки неверной длины или с
// символами вне алфавита.
var ErrInvalidCode = errors.New("invalid short code")

// Encode кодирует значение в короткий код фиксированной длины: старший разряд
// первым, слева дополняется нулевыми символами алфавита.
func Encode(id uint64) string {
	var buf [CodeLength]byte
	for i := CodeLength - 1; i >= 0; i-- {
		buf[i] = alphabet[id%base]
		id /= base
	}
	return string(buf[:])
}

// Decode восстанавливает числовое значение из короткого кода.
func Decode(code string) (uint64, error) {
	if len(code) != CodeLength {
		return 0, ErrInvalidCode
	}
	var id uint64
	for i := 0; i < len(code); i++ {
		pos := strings.IndexByte(alphabet, code[i])
		if pos == -1 {
			return 0, ErrInvalidCode
		}
		id = id*base + uint64(pos)
	}
	return id, nil
}

// ValidCode сообщает, является ли строка корректным коротким кодом.
func ValidCode(code string) bool {
	_, err := Decode(code)
	return err == nil
}
