package precision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundToDigits_BankersRounding(t *testing.T) {
	// Округление half-to-even: ровно половина уходит к четной цифре
	tests := []struct {
		value  string
		digits int
		want   string
	}{
		{"0.125", 2, "0.12"},
		{"0.135", 2, "0.14"},
		{"2.675", 2, "2.68"},
		{"2.665", 2, "2.66"},
		{"1.005", 2, "1.00"},
		{"1.25", 1, "1.2"},
		{"1.35", 1, "1.4"},
		{"12.45", 1, "12.4"},
	}

	for _, tt := range tests {
		got, err := RoundToDigits(tt.value, tt.digits)
		require.NoError(t, err, "RoundToDigits(%q, %d)", tt.value, tt.digits)
		assert.Equal(t, tt.want, got, "RoundToDigits(%q, %d)", tt.value, tt.digits)
	}
}

func TestRoundToDigits_LeadingZeros(t *testing.T) {
	// Для |x| < 1 digits считается от первой значащей цифры дробной части
	tests := []struct {
		value  string
		digits int
		want   string
	}{
		{"0.00123", 2, "0.0012"},
		{"0.00123", 4, "0.001230"},
		{"0.001235", 3, "0.00124"},
		{"0.5", 1, "0.5"},
		{"0.9999", 1, "1.0"},
	}

	for _, tt := range tests {
		got, err := RoundToDigits(tt.value, tt.digits)
		require.NoError(t, err, "RoundToDigits(%q, %d)", tt.value, tt.digits)
		assert.Equal(t, tt.want, got, "RoundToDigits(%q, %d)", tt.value, tt.digits)
	}
}

func TestRoundToDigits_DecimalPlaces(t *testing.T) {
	// Для |x| >= 1 digits - буквальное количество знаков после запятой
	tests := []struct {
		value  string
		digits int
		want   string
	}{
		{"3.14159", 3, "3.142"},
		{"3.14159", 2, "3.14"},
		{"1.199", 2, "1.20"},
		{"1500", 2, "1500.00"},
	}

	for _, tt := range tests {
		got, err := RoundToDigits(tt.value, tt.digits)
		require.NoError(t, err, "RoundToDigits(%q, %d)", tt.value, tt.digits)
		assert.Equal(t, tt.want, got, "RoundToDigits(%q, %d)", tt.value, tt.digits)
	}
}

func TestRoundToDigits_SignHandling(t *testing.T) {
	got, err := RoundToDigits("-1.2345", 2)
	require.NoError(t, err)
	assert.Equal(t, "-1.23", got)

	got, err = RoundToDigits("-0.00123", 2)
	require.NoError(t, err)
	assert.Equal(t, "-0.0012", got)

	// Отрицательный ноль нормализуется: знак не возвращается
	got, err = RoundToDigits("-0.00000", 3)
	require.NoError(t, err)
	assert.Equal(t, "0.000", got)
}

func TestRoundToDigits_InvalidDigits(t *testing.T) {
	_, err := RoundToDigits("1.5", 0)
	assert.ErrorIs(t, err, ErrInvalidDigits)

	_, err = RoundToDigits("1.5", -3)
	assert.ErrorIs(t, err, ErrInvalidDigits)
}

func TestRoundToDigits_Unparseable(t *testing.T) {
	_, err := RoundToDigits("abc", 2)
	assert.Error(t, err)
}

func TestFindCommonPrecision_ExactMatch(t *testing.T) {
	// Полное совпадение возвращается как есть, порог не проверяется
	for _, s := range []string{"1.23456", "abc", "0", "-42", "0.1"} {
		got, err := FindCommonPrecision(s, s, DefaultMinSigFigs)
		require.NoError(t, err, "FindCommonPrecision(%q, %q)", s, s)
		assert.Equal(t, s, got)
	}
}

func TestFindCommonPrecision_NonNumeric(t *testing.T) {
	_, err := FindCommonPrecision("abc", "def", DefaultMinSigFigs)
	assert.ErrorIs(t, err, ErrNonNumericMismatch)

	// Числовое против текстового - тоже нечисловая пара
	_, err = FindCommonPrecision("abc", "1.0", DefaultMinSigFigs)
	assert.ErrorIs(t, err, ErrNonNumericMismatch)
}

func TestFindCommonPrecision_Convergence(t *testing.T) {
	// 1.23456 и 1.23449 сходятся только на двух знаках ("1.23"):
	// при пороге 6 это отказ, при пороге 3 - результат
	_, err := FindCommonPrecision("1.23456", "1.23449", 6)
	assert.ErrorIs(t, err, ErrDivergentValues)

	got, err := FindCommonPrecision("1.23456", "1.23449", 3)
	require.NoError(t, err)
	assert.Equal(t, "1.23", got)

	// 3.14159 и 3.14158 сходятся на четырех знаках (5 значащих цифр)
	got, err = FindCommonPrecision("3.14159", "3.14158", 5)
	require.NoError(t, err)
	assert.Equal(t, "3.1416", got)

	_, err = FindCommonPrecision("3.14159", "3.14158", 6)
	assert.ErrorIs(t, err, ErrDivergentValues)

	got, err = FindCommonPrecision("2.718281828", "2.718281829", 6)
	require.NoError(t, err)
	assert.Equal(t, "2.71828183", got)
}

func TestFindCommonPrecision_DifferentPlaces(t *testing.T) {
	// Стартовая точность берется из более длинного значения
	got, err := FindCommonPrecision("1.234567", "1.23456789", 6)
	require.NoError(t, err)
	assert.Equal(t, "1.23457", got)
}

func TestFindCommonPrecision_Symmetry(t *testing.T) {
	pairs := [][2]string{
		{"1.23456", "1.23449"},
		{"3.14159", "3.14158"},
		{"1.234567", "1.23456789"},
		{"-1.234567", "-1.234568"},
	}

	for _, p := range pairs {
		ab, errAB := FindCommonPrecision(p[0], p[1], 3)
		ba, errBA := FindCommonPrecision(p[1], p[0], 3)
		if errAB != nil {
			assert.Error(t, errBA, "пара %v", p)
			continue
		}
		require.NoError(t, errBA, "пара %v", p)
		assert.Equal(t, ab, ba, "пара %v", p)
	}
}

func TestFindCommonPrecision_SignPreserved(t *testing.T) {
	got, err := FindCommonPrecision("-1.234567", "-1.234568", 6)
	require.NoError(t, err)
	assert.Equal(t, "-1.23457", got)
}

func TestFindCommonPrecision_FloorHolds(t *testing.T) {
	// Принятый результат всегда несет не меньше значащих цифр, чем порог
	pairs := [][2]string{
		{"1.234567", "1.234568"},
		{"0.001234567", "0.001234568"},
		{"987654.321", "987654.322"},
	}

	for k := 1; k <= 6; k++ {
		for _, p := range pairs {
			got, err := FindCommonPrecision(p[0], p[1], k)
			if err != nil {
				assert.ErrorIs(t, err, ErrDivergentValues, "пара %v, порог %d", p, k)
				continue
			}
			assert.GreaterOrEqual(t, SigFigs(got), k, "пара %v, порог %d", p, k)
		}
	}
}

func TestSigFigs(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"0.0012", 2},
		{"-1.23", 3},
		{"1.20", 3},
		{"0.000", 0},
		{"1500", 4},
		{"2.71828183", 9},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SigFigs(tt.in), "SigFigs(%q)", tt.in)
	}
}
