package i18n

var paymentTerms = map[Locale]string{
	English: "Terms of payment: Payment is due 30 days after receipt of invoice.\n" +
		"Please transfer the invoice amount to the account specified below, stating the invoice number.\n\n" +
		"Thank you for your order and the trust you have placed in us.\n\n" +
		"Best regards,\nLucas Christian Müllner",
	Spanish: "Condiciones de pago: El pago deberá efectuarse en un plazo de 30 días tras la recepción de la factura.\n" +
		"Le rogamos que transfiera el importe de la factura a la cuenta que se indica a continuación, indicando el número de factura.\n\n" +
		"Gracias por su pedido y por la confianza depositada en nosotros.\n\n" +
		"Un cordial saludo,\nLucas Christian Müllner",
}

// PaymentTermsNotes returns the boilerplate closing paragraph used when the
// caller supplies no final notes of their own.
func PaymentTermsNotes(loc Locale) (string, error) {
	text, ok := paymentTerms[loc]
	if !ok {
		return "", unsupported(loc)
	}
	return text, nil
}
