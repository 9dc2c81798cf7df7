package partials

var AdminSubmissionAlert Partial = `
{{ define "content" }}
	A new rights issue submission has been received.<br>
	<br>
	<table class="summary">
		<tr><td class="label">Shareholder</td><td>{{ .ShareholderName }}</td></tr>
		<tr><td class="label">Registrar Account Number</td><td>{{ .RegAccountNumber }}</td></tr>
		<tr><td class="label">Submission Reference</td><td>{{ .Reference }}</td></tr>
		<tr><td class="label">Action</td><td>{{ .Action }}</td></tr>
		<tr><td class="label">Shares Accepted</td><td>{{ .SharesAccepted }}</td></tr>
		<tr><td class="label">Shares Renounced</td><td>{{ .SharesRenounced }}</td></tr>
		<tr><td class="label">Amount Payable</td><td>{{ .AmountPayable }}</td></tr>
		<tr><td class="label">Contact Email</td><td>{{ .Email }}</td></tr>
		<tr><td class="label">Mobile Phone</td><td>{{ .MobilePhone }}</td></tr>
	</table>
	The completed acceptance form is available in the back office for review.<br>
{{ end }}
`
