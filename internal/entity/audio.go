package entity

// AudioClip é o resultado de uma síntese de voz bem-sucedida. Transiente:
// produzido por request, nunca persistido. Um *AudioClip nil significa
// "sem áudio" (síntese esgotou as tentativas).
type AudioClip struct {
	Data     []byte
	MIMEType string
}
