package admin

// Verifier answers credential checks for the admin dashboard. Swapping
// the implementation lets a deployment source its secrets elsewhere.
type Verifier interface {
	VerifyPassword(password string) bool
	VerifyPIN(pin string) bool
}

const (
	defaultPassword = "manager123"
	defaultPIN      = "1234"
)

// StaticVerifier compares against fixed credentials.
type StaticVerifier struct {
	Password string
	PIN      string
}

// NewStaticVerifier returns a verifier holding the factory defaults.
func NewStaticVerifier() StaticVerifier {
	return StaticVerifier{Password: defaultPassword, PIN: defaultPIN}
}

func (v StaticVerifier) VerifyPassword(password string) bool {
	return v.Password == password
}

func (v StaticVerifier) VerifyPIN(pin string) bool {
	return v.PIN == pin
}

// Gate is the two-step admin login. The caller asks for the password
// first and only proceeds to the PIN after a match.
type Gate struct {
	verifier Verifier
}

func NewGate(v Verifier) *Gate {
	return &Gate{verifier: v}
}

func (g *Gate) CheckPassword(s string) bool {
	return g.verifier.VerifyPassword(s)
}

func (g *Gate) CheckPin(s string) bool {
	return g.verifier.VerifyPIN(s)
}
