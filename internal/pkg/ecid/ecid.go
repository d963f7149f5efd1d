// Package ecid checks Ecuadorian identity numbers: the 10-digit cédula and the 13-digit RUC.
package ecid

const provinces = 24

// ValidCedula checks length, province code and the modulo-10 check digit.
func ValidCedula(s string) bool {
	d, ok := digits(s, 10)
	if !ok || !validProvince(d) {
		return false
	}
	sum := 0
	for i := range 9 {
		v := d[i]
		if i%2 == 0 {
			v *= 2
			if v > 9 {
				v -= 9
			}
		}
		sum += v
	}
	return (10-sum%10)%10 == d[9]
}

// ValidRUC checks a RUC. Natural-person RUCs (third digit below 6) embed a cédula.
// Company and public-sector RUCs only get the structural checks.
func ValidRUC(s string) bool {
	d, ok := digits(s, 13)
	if !ok || !validProvince(d) || s[10:] != "001" {
		return false
	}
	if d[2] < 6 {
		return ValidCedula(s[:10])
	}
	return true
}

func validProvince(d []int) bool {
	p := d[0]*10 + d[1]
	return p >= 1 && p <= provinces
}

func digits(s string, n int) ([]int, bool) {
	if len(s) != n {
		return nil, false
	}
	out := make([]int, n)
	for i := range n {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, false
		}
		out[i] = int(c - '0')
	}
	return out, true
}
