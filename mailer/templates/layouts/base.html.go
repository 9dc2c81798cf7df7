package layouts

import (
	"strings"
	"time"
)

type Layout string

const year = "{current_year}"

// Base returns the email layout with the current year substituted in.
func Base() Layout {
	return Layout(strings.Replace(string(base), year, time.Now().Format("2006"), 1))
}

var base Layout = `
{{ define "layout" }}
<!DOCTYPE html>
<html><head>
  <style type="text/css">
    body {
      margin: 0;
      padding: 0;
      background-color: #f4f4f4;
      font-family: Helvetica, Arial, sans-serif;
      color: #333333;
    }
    .wrapper {
      max-width: 600px;
      margin: 0 auto;
      background-color: #ffffff;
    }
    .header {
      background-color: #00415a;
      color: #ffffff;
      padding: 24px 32px;
      font-size: 18px;
      font-weight: bold;
    }
    .body {
      padding: 24px 32px;
      font-size: 14px;
      line-height: 1.6;
    }
    .footer {
      padding: 16px 32px;
      font-size: 11px;
      color: #999999;
      border-top: 1px solid #eeeeee;
    }
    table.summary {
      border-collapse: collapse;
      width: 100%;
      margin: 16px 0;
    }
    table.summary td {
      border: 1px solid #dddddd;
      padding: 6px 10px;
      font-size: 13px;
    }
    table.summary td.label {
      background-color: #f7f7f7;
      width: 45%;
    }
  </style>
</head>
<body>
  <div class="wrapper">
    <div class="header">APEL Capital &amp; Trust Registrars</div>
    <div class="body">
      {{ template "content" . }}
    </div>
    <div class="footer">
      &copy; {current_year} APEL Capital &amp; Trust Registrars Limited. All rights reserved.<br>
      This message was sent in connection with a rights issue offer. If you received
      it in error, please disregard it.
    </div>
  </div>
</body></html>
{{ end }}
`
