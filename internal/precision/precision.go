package precision

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Ошибки сверки значений. Вызывающий код различает их через errors.Is.
var (
	// ErrInvalidDigits - запрошено неположительное количество разрядов
	ErrInvalidDigits = errors.New("количество разрядов должно быть положительным")
	// ErrNonNumericMismatch - нечисловые значения не совпадают побайтно
	ErrNonNumericMismatch = errors.New("нечисловые значения не совпадают")
	// ErrDivergentValues - значения расходятся сильнее, чем допускает порог значащих цифр
	ErrDivergentValues = errors.New("значения расходятся слишком сильно")
)

// DefaultMinSigFigs - минимальное количество значащих цифр в объединенном значении
const DefaultMinSigFigs = 6

// RoundToDigits округляет числовую строку по правилу банковского округления
// (round-half-to-even).
//
// Смысл параметра digits зависит от величины числа:
//   - |value| < 1: digits значащих цифр после ведущих нулей дробной части
//     ("0.00123", digits=2 -> "0.0012");
//   - |value| >= 1: digits знаков после запятой ("3.14159", digits=3 -> "3.142").
//
// Знак снимается перед округлением и возвращается в результат.
func RoundToDigits(value string, digits int) (string, error) {
	if digits <= 0 {
		return "", fmt.Errorf("%w: получено %d", ErrInvalidDigits, digits)
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return "", fmt.Errorf("не удалось разобрать число %q: %v", value, err)
	}

	// Отрицательный ноль нормализуется в ноль до выделения знака
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	abs := d.Abs()

	// Для чисел вида 0.00123 ведущие нули дробной части не являются значащими,
	// позиция округления сдвигается за них
	places := digits
	str := abs.String()
	if intPart, fracPart, ok := strings.Cut(str, "."); ok && intPart == "0" {
		leadingZeros := len(fracPart) - len(strings.TrimLeft(fracPart, "0"))
		places = leadingZeros + digits
	}

	// StringFixed сохраняет хвостовые нули до позиции округления,
	// как quantize у Decimal: от этого зависят сравнение строк
	// и подсчет значащих цифр
	rounded := abs.RoundBank(int32(places))
	return sign + rounded.StringFixed(int32(places)), nil
}

// FindCommonPrecision находит самое длинное десятичное представление,
// к которому округляются оба значения, при условии что в нем остается
// не меньше minSigFigs значащих цифр.
//
// Нечисловые значения (заголовки, текстовые метки) сравниваются побайтно:
// совпали - возвращается первое, нет - ErrNonNumericMismatch.
func FindCommonPrecision(a, b string, minSigFigs int) (string, error) {
	_, errA := decimal.NewFromString(a)
	_, errB := decimal.NewFromString(b)
	if errA != nil || errB != nil {
		if a != b {
			return "", fmt.Errorf("%w: %q и %q", ErrNonNumericMismatch, a, b)
		}
		return a, nil
	}

	// Полное совпадение строк - округление не требуется
	if a == b {
		return a, nil
	}

	maxPlaces := decimalPlaces(a)
	if p := decimalPlaces(b); p > maxPlaces {
		maxPlaces = p
	}

	// Перебор от максимальной точности к минимальной: первое совпадение
	// дает самое длинное представление, поддержанное обеими платформами
	for places := maxPlaces; places >= 1; places-- {
		roundedA, err := RoundToDigits(a, places)
		if err != nil {
			return "", err
		}
		roundedB, err := RoundToDigits(b, places)
		if err != nil {
			return "", err
		}
		if roundedA == roundedB && SigFigs(roundedA) >= minSigFigs {
			return roundedA, nil
		}
	}

	return "", fmt.Errorf("%w (порог %d значащих цифр): a = %s, b = %s",
		ErrDivergentValues, minSigFigs, a, b)
}

// SigFigs считает значащие цифры в десятичной строке:
// знак, точка и ведущие нули не учитываются.
func SigFigs(s string) int {
	s = strings.TrimPrefix(s, "-")
	s = strings.ReplaceAll(s, ".", "")
	return len(strings.TrimLeft(s, "0"))
}

// decimalPlaces возвращает количество цифр после точки (0, если точки нет)
func decimalPlaces(s string) int {
	if _, frac, ok := strings.Cut(s, "."); ok {
		return len(frac)
	}
	return 0
}
