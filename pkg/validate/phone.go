package validate

import (
	"errors"
	"strings"
)

// ErrInvalidPhone — номер не похож на российский мобильный.
var ErrInvalidPhone = errors.New("invalid russian mobile phone")

// Коды мобильных операторов (вторая–четвёртая цифры номера).
var mobilePrefixes = map[string]struct{}{}

func init() {
	for _, p := range strings.Fields(`
		900 901 902 903 904 905 906 908 909
		910 911 912 913 914 915 916 917 918 919
		920 921 922 923 924 925 926 927 928 929
		930 931 932 933 934 936 937 938 939
		950 951 952 953 954 955 956 958
		960 961 962 963 964 965 966 967 968 969
		970 971 977 978
		980 981 982 983 984 985 986 987 988 989
		991 992 993 994 995 996 997 999`) {
		mobilePrefixes[p] = struct{}{}
	}
}

// NormalizePhone — приводит номер к виду +7XXXXXXXXXX.
// Принимает 10 цифр, 11 цифр с ведущей 7 или 8 и любые разделители.
func NormalizePhone(raw string) (string, error) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case len(digits) == 10:
		digits = "7" + digits
	case len(digits) == 11 && digits[0] == '8':
		digits = "7" + digits[1:]
	case len(digits) == 11 && digits[0] == '7':
	default:
		return "", ErrInvalidPhone
	}

	if _, ok := mobilePrefixes[digits[1:4]]; !ok {
		return "", ErrInvalidPhone
	}
	return "+" + digits, nil
}
