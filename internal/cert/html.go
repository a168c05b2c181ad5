package cert

import (
	"html/template"
	"io"
)

// RenderOptions carries the branding fields a certificate document shows
// beyond the certificate itself. Zero values fall back to neutral labels
// and the built-in logo.
type RenderOptions struct {
	Instructor  string // first signature line, defaults to "Technical Training Team"
	Company     string // third signature line and copyright source
	Copyright   string // explicit notice; empty derives one from Company
	LogoDataURI string
}

const placeholderLogo = "data:image/svg+xml,%3Csvg xmlns='http://www.w3.org/2000/svg' width='200' height='80' viewBox='0 0 200 80'%3E%3Crect width='200' height='80' fill='%232C5282'/%3E%3Ctext x='100' y='40' font-family='Arial' font-size='16' fill='white' text-anchor='middle' dominant-baseline='middle'%3EQUIZFORGE%3C/text%3E%3C/svg%3E"

type renderData struct {
	C          Certificate
	Date       string
	SealColor  string
	Instructor string
	Company    string
	Copyright  string
	Logo       string
}

// RenderHTML writes the standalone printable certificate document.
func RenderHTML(w io.Writer, c Certificate, opts RenderOptions) error {
	instructor := opts.Instructor
	if instructor == "" {
		instructor = "Technical Training Team"
	}
	company := opts.Company
	if company == "" {
		company = "Issuing Organization"
	}
	copyright := opts.Copyright
	if copyright == "" && opts.Company != "" {
		copyright = "© " + opts.Company + ". All rights reserved"
	}
	logo := opts.LogoDataURI
	if logo == "" {
		logo = placeholderLogo
	}
	return certTmpl.Execute(w, renderData{
		C:          c,
		Date:       c.IssuedAt.Format("January 02, 2006"),
		SealColor:  SealColor(c.Score),
		Instructor: instructor,
		Company:    company,
		Copyright:  copyright,
		Logo:       logo,
	})
}

var certTmpl = template.Must(template.New("certificate").Parse(certTemplateSrc))

const certTemplateSrc = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Certificate - {{.C.Recipient}}</title>
    <style>
        @import url('https://fonts.googleapis.com/css2?family=Playfair+Display:wght@700&family=Open+Sans:wght@400;600&display=swap');
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }
        body {
            font-family: 'Open Sans', sans-serif;
            background: linear-gradient(135deg, #5B9BD5 0%, #2C5282 100%);
            min-height: 100vh;
            display: flex;
            justify-content: center;
            align-items: center;
            padding: 20px;
        }
        .action-buttons {
            position: fixed;
            top: 20px;
            right: 20px;
            z-index: 100;
        }
        .action-button {
            background: white;
            color: #2C5282;
            border: none;
            padding: 10px 20px;
            border-radius: 20px;
            font-weight: 600;
            cursor: pointer;
            margin-left: 10px;
            box-shadow: 0 4px 10px rgba(0,0,0,0.2);
        }
        .certificate {
            max-width: 1100px;
            width: 95%;
            min-height: 800px;
            background: white;
            border-radius: 20px;
            box-shadow: 0 30px 60px rgba(0,0,0,0.3);
            position: relative;
            overflow: hidden;
            padding: 60px;
            margin: 20px auto;
            border: 3px solid {{.SealColor}};
        }
        .watermark {
            position: absolute;
            top: 50%;
            left: 50%;
            transform: translate(-50%, -50%) rotate(-30deg);
            font-size: 140px;
            font-weight: bold;
            color: rgba(44, 82, 130, 0.05);
            pointer-events: none;
            white-space: nowrap;
        }
        .header {
            background: linear-gradient(135deg, #2C5282 0%, #5B9BD5 100%);
            margin: -60px -60px 40px;
            padding: 40px;
            text-align: center;
            border-radius: 17px 17px 0 0;
        }
        .logo {
            max-width: 200px;
            height: auto;
            margin-bottom: 20px;
        }
        h1 {
            font-family: 'Playfair Display', serif;
            font-size: 42px;
            color: white;
            margin-bottom: 10px;
        }
        .details {
            text-align: center;
            font-size: 20px;
            line-height: 2;
            color: #333;
            margin: 40px 0;
        }
        .recipient {
            font-family: 'Playfair Display', serif;
            font-size: 56px;
            color: #2C5282;
            text-align: center;
            margin: 40px 0;
            padding-bottom: 20px;
            border-bottom: 3px solid {{.SealColor}};
        }
        .quiz-title {
            font-size: 26px;
            font-weight: 600;
            color: #2C5282;
        }
        .performance {
            background: {{.SealColor}};
            color: white;
            padding: 15px 40px;
            border-radius: 30px;
            display: inline-block;
            font-weight: bold;
            font-size: 20px;
            margin: 20px 0;
        }
        .score {
            font-size: 60px;
            color: {{.SealColor}};
            font-weight: bold;
            margin: 20px 0;
        }
        .seal {
            position: absolute;
            right: 80px;
            bottom: 180px;
            width: 140px;
            height: 140px;
            border: 4px solid {{.SealColor}};
            border-radius: 50%;
            display: flex;
            flex-direction: column;
            justify-content: center;
            align-items: center;
            transform: rotate(-15deg);
            color: {{.SealColor}};
            font-weight: bold;
            font-size: 13px;
            text-align: center;
            padding: 10px;
        }
        .signatures {
            display: flex;
            justify-content: space-between;
            margin-top: 60px;
            padding-top: 40px;
            border-top: 2px solid #ddd;
        }
        .signature {
            text-align: center;
            flex: 1;
        }
        .signature-line {
            width: 200px;
            border-bottom: 2px solid #333;
            margin: 0 auto 10px;
            height: 40px;
        }
        .signature-title {
            color: #666;
            font-size: 14px;
        }
        .certificate-meta {
            background: #2C5282;
            color: white;
            padding: 20px;
            margin: 60px -60px -60px;
            border-radius: 0 0 17px 17px;
            text-align: center;
            font-size: 14px;
        }
        @media print {
            body {
                background: white;
                padding: 0;
            }
            .certificate {
                box-shadow: none;
                border-radius: 0;
            }
            .no-print {
                display: none;
            }
        }
    </style>
</head>
<body>
    <div class="action-buttons no-print">
        <button class="action-button" onclick="window.print()">Print</button>
        <button class="action-button" onclick="downloadCertificate()">Download</button>
    </div>

    <div class="certificate">
        <div class="watermark">CERTIFIED</div>

        <div class="header">
            <img src="{{.Logo}}" alt="Logo" class="logo">
            <h1>Certificate of Achievement</h1>
        </div>

        <div class="details">This is to certify that</div>
        <div class="recipient">{{.C.Recipient}}</div>
        <div class="details">
            has successfully completed the professional assessment<br>
            <span class="quiz-title">&quot;{{.C.QuizTitle}}&quot;</span><br>
            <div class="performance">{{.C.Performance}}</div><br>
            <div class="score">{{.C.Score}}%</div>
        </div>

        <div class="seal">CERTIFIED<br>PROFESSIONAL<br>{{.C.Score}}%</div>

        <div class="signatures">
            <div class="signature">
                <div class="signature-line"></div>
                <div>{{.Instructor}}</div>
                <div class="signature-title">Lead Instructor</div>
            </div>
            <div class="signature">
                <div class="signature-line"></div>
                <div>{{.Date}}</div>
                <div class="signature-title">Date of Completion</div>
            </div>
            <div class="signature">
                <div class="signature-line"></div>
                <div>{{.Company}}</div>
                <div class="signature-title">Training Organization</div>
            </div>
        </div>

        <div class="certificate-meta">
            {{if .Copyright}}<div>{{.Copyright}}</div>{{end}}
            <div style="margin-top: 8px;">Certificate ID: {{.C.ID}} &middot; Verify this certificate by its ID</div>
        </div>
    </div>

    <script>
        const certificateData = {
            id: "{{.C.ID}}",
            recipient: "{{.C.Recipient}}",
            quiz: "{{.C.QuizTitle}}",
            score: {{.C.Score}},
            date: "{{.Date}}",
            performance: "{{.C.Performance}}"
        };

        function downloadCertificate() {
            const blob = new Blob([document.documentElement.outerHTML], {type: 'text/html;charset=utf-8'});
            const url = URL.createObjectURL(blob);
            const a = document.createElement('a');
            a.href = url;
            a.download = 'certificate_' + certificateData.id + '.html';
            document.body.appendChild(a);
            a.click();
            document.body.removeChild(a);
            URL.revokeObjectURL(url);
        }

        document.addEventListener('keydown', function(e) {
            if ((e.ctrlKey || e.metaKey) && e.key === 'p') {
                e.preventDefault();
                window.print();
            }
        });
    </script>
</body>
</html>
`
