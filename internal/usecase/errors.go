package usecase

// DomainError é falha de negócio esperada, mapeada 1:1 para a resposta
// HTTP pelo handler.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// Códigos que cruzam a fronteira do orquestrador. Nada além deles vaza
// para o caller.
const (
	CodeLeadNotFound   = "LEAD_NOT_FOUND"
	CodeDeliveryFailed = "DELIVERY_FAILED"
)

// TechnicalError é falha de infraestrutura inesperada. O handler converte
// para 500 genérico; o detalhe fica só no log.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

// DomainCode devolve o código do DomainError ou "" se não for um.
func DomainCode(err error) string {
	if de, ok := err.(*DomainError); ok {
		return de.Code
	}
	return ""
}
