package partials

var ShareholderConfirmation Partial = `
{{ define "content" }}
	Dear {{ .Name }},<br>
	<br>
	Thank you. Your rights issue acceptance form has been received and is
	being processed.<br>
	<br>
	<table class="summary">
		<tr><td class="label">Registrar Account Number</td><td>{{ .RegAccountNumber }}</td></tr>
		<tr><td class="label">Submission Reference</td><td>{{ .Reference }}</td></tr>
		<tr><td class="label">Action</td><td>{{ .Action }}</td></tr>
		<tr><td class="label">Shares Accepted</td><td>{{ .SharesAccepted }}</td></tr>
		<tr><td class="label">Amount Payable</td><td>{{ .AmountPayable }}</td></tr>
	</table>
	A copy of your completed acceptance form is attached for your records.
	Please keep the submission reference above as well. If any of
	the details shown are incorrect, contact us at
	<a href="mailto:{{ .SupportEmail }}">{{ .SupportEmail }}</a> quoting your
	registrar account number.<br>
	<br>
	Kind regards,<br>
	<br>
	APEL Capital &amp; Trust Registrars<br>
{{ end }}
`
