package format

import (
	"encoding/json"
	"html/template"
	"io"
	"sort"

	"github.com/quizforge/quizforge/internal/quiz"
)

func init() {
	Register(Codec{
		Name:   "html",
		Exts:   []string{".html", ".htm"},
		MIME:   "text/html; charset=utf-8",
		Export: exportHTML,
	})
}

// Shown when no logo asset is configured or it fails to load.
const placeholderLogo = "data:image/svg+xml,%3Csvg xmlns='http://www.w3.org/2000/svg' width='200' height='80' viewBox='0 0 200 80'%3E%3Crect width='200' height='80' fill='%232C5282'/%3E%3Ctext x='100' y='40' font-family='Arial' font-size='16' fill='white' text-anchor='middle' dominant-baseline='middle'%3EQUIZFORGE%3C/text%3E%3C/svg%3E"

type htmlData struct {
	Title         string
	Description   string
	P             Presentation
	CopyrightText string
	FooterText    string
	QuestionsJSON template.JS
	ImageFiles    []string
	Logo          string
}

// exportHTML renders the self-contained interactive quiz document: embedded
// question payload, presentation config, navigation, scoring, optional
// timer, and an inline certificate on pass. Output is deterministic for a
// given (quiz, presentation) pair; the document samples the clock only when
// opened in a browser.
func exportHTML(w io.Writer, qz *quiz.Quiz, pres Presentation) error {
	if len(qz.Questions) == 0 {
		return ErrNoQuestions
	}

	// Marshal with HTML escaping on so question text can never terminate
	// the surrounding script element.
	payload, err := json.Marshal(questionRecords(qz.Questions))
	if err != nil {
		return err
	}

	seen := map[string]bool{}
	var images []string
	for _, q := range qz.Questions {
		if q.Image != "" && !seen[q.Image] {
			seen[q.Image] = true
			images = append(images, q.Image)
		}
	}
	sort.Strings(images)

	logo := pres.LogoDataURI
	if logo == "" {
		logo = placeholderLogo
	}
	footer := "Generated with QuizForge"
	if c := pres.CopyrightLine(); c != "" {
		footer = c + " | " + footer
	}

	return quizTmpl.Execute(w, htmlData{
		Title:         qz.Title,
		Description:   qz.Description,
		P:             pres,
		CopyrightText: pres.CopyrightLine(),
		FooterText:    footer,
		QuestionsJSON: template.JS(payload),
		ImageFiles:    images,
		Logo:          logo,
	})
}

var quizTmpl = template.Must(template.New("quiz").Parse(quizTemplateSrc))

const quizTemplateSrc = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <meta name="author" content="{{.P.Author}}">
    <meta name="company" content="{{.P.Company}}">
    <meta name="generator" content="QuizForge">
    <title>{{.Title}}</title>
    <style>
        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            line-height: 1.6;
            margin: 0;
            padding: 20px;
            background: linear-gradient(135deg, #5B9BD5 0%, #2C5282 100%);
            min-height: 100vh;
        }
        .quiz-container {
            background: white;
            padding: 30px;
            border-radius: 15px;
            margin: 20px auto;
            max-width: 900px;
            box-shadow: 0 20px 60px rgba(0,0,0,0.3);
        }
        h1 {
            color: #2C5282;
            text-align: center;
            margin-bottom: 10px;
        }
        .quiz-description {
            text-align: center;
            color: #666;
            margin-bottom: 10px;
        }
        .quiz-meta {
            text-align: center;
            color: #999;
            font-size: 14px;
            margin-bottom: 20px;
        }
        .timer-display {
            text-align: center;
            font-size: 24px;
            color: #2C5282;
            font-weight: bold;
            margin: 15px 0;
            padding: 10px;
            background: #f0f4ff;
            border-radius: 8px;
            display: none;
        }
        .timer-display.warning {
            color: #ffc107;
            background: #fff3cd;
        }
        .timer-display.danger {
            color: #dc3545;
            background: #f8d7da;
        }
        .quiz-question {
            margin: 20px 0;
            padding: 20px;
            background: #f8f9fa;
            border-radius: 10px;
            border-left: 4px solid #5B9BD5;
        }
        .quiz-question h4 {
            color: #2C5282;
            margin-bottom: 15px;
        }
        .difficulty-badge {
            display: inline-block;
            padding: 2px 8px;
            border-radius: 12px;
            font-size: 12px;
            font-weight: bold;
            margin-left: 10px;
        }
        .difficulty-easy {
            background: #d4edda;
            color: #155724;
        }
        .difficulty-medium {
            background: #fff3cd;
            color: #856404;
        }
        .difficulty-hard {
            background: #f8d7da;
            color: #721c24;
        }
        .question-image {
            width: 100%;
            max-width: 600px;
            height: auto;
            margin: 20px auto;
            display: block;
            border-radius: 8px;
            box-shadow: 0 4px 6px rgba(0,0,0,0.1);
        }
        .quiz-options {
            margin: 15px 0;
        }
        .quiz-option {
            display: block;
            margin: 10px 0;
            padding: 15px;
            background: white;
            border: 2px solid #e2e8f0;
            border-radius: 8px;
            cursor: pointer;
            transition: all 0.3s;
        }
        .quiz-option:hover {
            background: #f0f4ff;
            border-color: #5B9BD5;
            transform: translateX(5px);
        }
        .quiz-option.selected {
            background: #f0f4ff;
            border-color: #5B9BD5;
            font-weight: 600;
        }
        .quiz-button {
            background: linear-gradient(135deg, #5B9BD5 0%, #2C5282 100%);
            color: white;
            padding: 12px 30px;
            border: none;
            border-radius: 25px;
            font-size: 16px;
            font-weight: 600;
            cursor: pointer;
            margin: 10px 5px;
            transition: transform 0.2s;
        }
        .quiz-button:hover {
            transform: scale(1.05);
        }
        .quiz-button:disabled {
            background: #ccc;
            cursor: not-allowed;
            transform: scale(1);
        }
        .quiz-results {
            padding: 30px;
            background: linear-gradient(135deg, #f0f4ff 0%, #e8ecff 100%);
            border-radius: 15px;
            margin: 20px 0;
            display: none;
        }
        .quiz-score {
            font-size: 28px;
            color: #2C5282;
            font-weight: bold;
            text-align: center;
            margin: 20px 0;
        }
        .quiz-progress {
            background: #e2e8f0;
            height: 30px;
            border-radius: 15px;
            overflow: hidden;
            margin: 20px 0;
        }
        .quiz-progress-bar {
            background: linear-gradient(90deg, #5B9BD5 0%, #2C5282 100%);
            height: 100%;
            width: 0%;
            transition: width 0.5s;
            display: flex;
            align-items: center;
            justify-content: center;
            color: white;
            font-weight: bold;
        }
        .result-item {
            margin: 15px 0;
            padding: 15px;
            border-radius: 8px;
        }
        .result-item.correct {
            background: #d4edda;
            border-left: 4px solid #28a745;
        }
        .result-item.incorrect {
            background: #f8d7da;
            border-left: 4px solid #dc3545;
        }
        .certificate-wrapper {
            display: none;
            margin: 30px auto;
            text-align: center;
        }
        .certificate-iframe {
            width: 100%;
            height: 900px;
            border: none;
            border-radius: 15px;
            box-shadow: 0 20px 60px rgba(0,0,0,0.3);
        }
        .footer {
            text-align: center;
            margin-top: 30px;
            padding-top: 20px;
            border-top: 1px solid #e2e8f0;
            color: #666;
            font-size: 12px;
        }
    </style>
    <script>
        // Quiz configuration
        const QUIZ_CONFIG = {
            showResults: {{.P.ShowResults}},
            showExplanations: {{.P.ShowExplanations}},
            allowReview: {{.P.AllowReview}},
            randomizeQuestions: {{.P.Randomize}},
            timerMinutes: {{.P.TimerMinutes}},
            passThreshold: {{.P.PassThreshold}},
            enableCertificate: {{.P.EnableCertificate}},
            author: "{{.P.Author}}",
            company: "{{.P.Company}}",
            quizTitle: "{{.Title}}",
            copyright: "{{.CopyrightText}}"
        };

        let timeRemaining = QUIZ_CONFIG.timerMinutes * 60;
        let timerInterval = null;
    </script>
{{- if .ImageFiles}}
    <script>
        // Image configuration - see answer key for setup instructions
        const IMAGE_PATHS = {
{{- range $i, $f := .ImageFiles}}{{if $i}},{{end}}
            "{{$f}}": "{{$f}}"
{{- end}}
        };

        const PLACEHOLDER_IMAGE = "data:image/svg+xml,%3Csvg xmlns='http://www.w3.org/2000/svg' width='1024' height='1024' viewBox='0 0 1024 1024'%3E%3Crect width='1024' height='1024' fill='%23f0f0f0'/%3E%3Ctext x='512' y='512' font-family='Arial' font-size='48' fill='%23999' text-anchor='middle' dominant-baseline='middle'%3EImage Loading...%3C/text%3E%3C/svg%3E";

        function getImagePath(filename) {
            return IMAGE_PATHS[filename] || PLACEHOLDER_IMAGE;
        }
    </script>
{{- end}}
</head>
<body>
    <div class="quiz-container">
        <h1>{{.Title}}</h1>
        <p class="quiz-description">{{.Description}}</p>
        <div class="quiz-meta">
            {{if .P.Author}}Created by: {{.P.Author}}{{end}}
            {{if .P.Company}}Organization: {{.P.Company}}{{end}}
        </div>

        <div class="timer-display" id="timerDisplay">
            Time Remaining: <span id="timerValue">00:00</span>
        </div>

        <div class="quiz-progress">
            <div class="quiz-progress-bar" id="progressBar">0%</div>
        </div>

        <div id="quizContent"></div>

        <div style="text-align: center; margin-top: 30px;">
            <button class="quiz-button" id="prevBtn" onclick="prevQuestion()" style="display:none;">&larr; Previous</button>
            <button class="quiz-button" id="nextBtn" onclick="nextQuestion()" style="display:none;">Next &rarr;</button>
            <button class="quiz-button" id="startBtn" onclick="startQuiz()">Start Quiz</button>
            <button class="quiz-button" id="submitBtn" onclick="submitQuiz()" style="display:none;">Submit Quiz</button>
            <button class="quiz-button" id="restartBtn" onclick="restartQuiz()" style="display:none;">Restart Quiz</button>
        </div>

        <div class="quiz-results" id="quizResults">
            <h2 style="text-align: center; color: #2C5282;">Quiz Results</h2>
            <div class="quiz-score" id="quizScore"></div>
            <div id="resultDetails"></div>
        </div>

        <div class="certificate-wrapper" id="certificateWrapper">
            <h2 style="color: #2C5282; margin-bottom: 20px;">Your Certificate of Achievement</h2>
            <iframe id="certificateFrame" class="certificate-iframe"></iframe>
            <div style="margin-top: 20px;">
                <button class="quiz-button" onclick="downloadCertificate()">Download Certificate</button>
                <button class="quiz-button" onclick="printCertificate()">Print Certificate</button>
            </div>
        </div>

        <div class="footer">
            {{.FooterText}}
        </div>
    </div>

    <script>
        const logoData = "{{.Logo}}";
        let quizQuestions = {{.QuestionsJSON}};
        let currentQuestion = 0;
        let userAnswers = [];
        let quizStarted = false;

        // Shuffle happens at presentation time; the embedded payload stays
        // in authored order.
        if (QUIZ_CONFIG.randomizeQuestions) {
            quizQuestions = quizQuestions.sort(() => Math.random() - 0.5);
        }

        function startTimer() {
            if (QUIZ_CONFIG.timerMinutes > 0) {
                document.getElementById('timerDisplay').style.display = 'block';
                updateTimerDisplay();

                timerInterval = setInterval(() => {
                    timeRemaining--;
                    updateTimerDisplay();

                    if (timeRemaining <= 0) {
                        clearInterval(timerInterval);
                        alert('Time is up! Submitting quiz...');
                        submitQuiz();
                    }
                }, 1000);
            }
        }

        function updateTimerDisplay() {
            const minutes = Math.floor(timeRemaining / 60);
            const seconds = timeRemaining % 60;
            document.getElementById('timerValue').textContent =
                String(minutes).padStart(2, '0') + ':' + String(seconds).padStart(2, '0');

            const timerDiv = document.getElementById('timerDisplay');
            if (timeRemaining < 60) {
                timerDiv.classList.add('danger');
            } else if (timeRemaining < 300) {
                timerDiv.classList.add('warning');
            }
        }

        function startQuiz() {
            quizStarted = true;
            currentQuestion = 0;
            userAnswers = new Array(quizQuestions.length).fill(null);
            document.getElementById('startBtn').style.display = 'none';
            document.getElementById('nextBtn').style.display = 'inline-block';
            document.getElementById('quizResults').style.display = 'none';
            document.getElementById('certificateWrapper').style.display = 'none';
            startTimer();
            showQuestion();
        }

        function showQuestion() {
            const question = quizQuestions[currentQuestion];
            const quizContent = document.getElementById('quizContent');

            let difficultyBadge = '';
            if (question.difficulty) {
                const diffClass = 'difficulty-' + question.difficulty.toLowerCase();
                difficultyBadge = '<span class="difficulty-badge ' + diffClass + '">' + question.difficulty + '</span>';
            }

            let html = '<div class="quiz-question">' +
                '<h4>Question ' + (currentQuestion + 1) + ' of ' + quizQuestions.length + ' ' + difficultyBadge + '</h4>' +
                '<p style="font-size: 18px; margin: 20px 0;">' + question.question + '</p>';

            if (question.image) {
                const imagePath = typeof getImagePath === 'function' ? getImagePath(question.image) : question.image;
                html += '<img src="' + imagePath + '" alt="Question ' + (currentQuestion + 1) + ' Image" class="question-image"' +
                    (typeof PLACEHOLDER_IMAGE !== 'undefined' ? ' onerror="this.onerror=null;this.src=PLACEHOLDER_IMAGE;"' : '') + '>';
            }

            html += '<div class="quiz-options">';

            question.options.forEach((option, index) => {
                const isSelected = userAnswers[currentQuestion] === index;
                html += '<label class="quiz-option' + (isSelected ? ' selected' : '') + '" onclick="selectAnswer(' + index + ')">' +
                    '<input type="radio" name="q' + currentQuestion + '" value="' + index + '"' +
                    (isSelected ? ' checked' : '') + ' style="margin-right: 10px;">' +
                    String.fromCharCode(65 + index) + ') ' + option +
                    '</label>';
            });

            html += '</div></div>';
            quizContent.innerHTML = html;

            if (QUIZ_CONFIG.allowReview) {
                document.getElementById('prevBtn').style.display = currentQuestion > 0 ? 'inline-block' : 'none';
            }
            document.getElementById('nextBtn').style.display = currentQuestion < quizQuestions.length - 1 ? 'inline-block' : 'none';
            document.getElementById('submitBtn').style.display = currentQuestion === quizQuestions.length - 1 ? 'inline-block' : 'none';

            updateProgress();
        }

        function selectAnswer(index) {
            userAnswers[currentQuestion] = index;
            const options = document.querySelectorAll('.quiz-option');
            options.forEach((option, i) => {
                option.classList.toggle('selected', i === index);
            });
        }

        function nextQuestion() {
            if (currentQuestion < quizQuestions.length - 1) {
                currentQuestion++;
                showQuestion();
            }
        }

        function prevQuestion() {
            if (currentQuestion > 0) {
                currentQuestion--;
                showQuestion();
            }
        }

        function updateProgress() {
            const progress = ((currentQuestion + 1) / quizQuestions.length) * 100;
            const progressBar = document.getElementById('progressBar');
            progressBar.style.width = progress + '%';
            progressBar.textContent = Math.round(progress) + '%';
        }

        function submitQuiz() {
            if (timerInterval) {
                clearInterval(timerInterval);
            }

            if (!QUIZ_CONFIG.showResults) {
                alert('Quiz submitted successfully!');
                location.reload();
                return;
            }

            let correct = 0;
            let resultHTML = '<div style="margin-top: 20px;">';

            quizQuestions.forEach((question, index) => {
                const userAnswer = userAnswers[index];
                const isCorrect = userAnswer === question.correct;
                if (isCorrect) correct++;

                resultHTML += '<div class="result-item ' + (isCorrect ? 'correct' : 'incorrect') + '">' +
                    '<strong>Q' + (index + 1) + ': ' + (isCorrect ? '&#10003; Correct' : '&#10007; Incorrect') + '</strong><br>' +
                    '<p style="margin: 10px 0;">' + question.question + '</p>' +
                    '<p style="color: #666;">Your answer: ' + (userAnswer !== null ? question.options[userAnswer] : 'Not answered') + '</p>' +
                    (!isCorrect ? '<p style="color: #155724;">Correct answer: ' + question.options[question.correct] + '</p>' : '') +
                    (QUIZ_CONFIG.showExplanations && question.explanation ? '<p style="font-style: italic; margin-top: 10px;">' + question.explanation + '</p>' : '') +
                    '</div>';
            });

            resultHTML += '</div>';

            const percentage = Math.round((correct / quizQuestions.length) * 100);
            const passed = percentage >= QUIZ_CONFIG.passThreshold;

            let feedback = '';
            let color = '';

            if (percentage >= 90) {
                feedback = 'Outstanding!';
                color = '#28a745';
            } else if (percentage >= 80) {
                feedback = 'Excellent work!';
                color = '#28a745';
            } else if (percentage >= QUIZ_CONFIG.passThreshold) {
                feedback = 'Good job! You passed!';
                color = '#ffc107';
            } else {
                feedback = 'Keep studying and try again!';
                color = '#dc3545';
            }

            document.getElementById('quizScore').innerHTML =
                '<div style="font-size: 48px; margin: 20px 0;">' + percentage + '%</div>' +
                '<div>You scored ' + correct + ' out of ' + quizQuestions.length + '</div>' +
                '<div style="font-size: 20px; color: ' + color + '; margin-top: 15px;">' + feedback + '</div>' +
                '<div style="margin-top: 10px; font-size: 16px;">Pass Threshold: ' + QUIZ_CONFIG.passThreshold + '% - ' +
                '<strong>' + (passed ? 'PASSED &#10003;' : 'NOT PASSED &#10007;') + '</strong></div>';
            document.getElementById('resultDetails').innerHTML = resultHTML;

            if (QUIZ_CONFIG.enableCertificate && passed) {
                const userName = prompt('Congratulations! Enter your name for the certificate:') || 'Participant';

                const timestamp = Date.now().toString();
                const random = Math.random().toString(36).substr(2, 4).toUpperCase();
                const certData = userName + QUIZ_CONFIG.quizTitle + percentage + timestamp + random;
                const certId = btoa(certData).replace(/[^A-Z0-9]/gi, '').substr(0, 12).toUpperCase();

                const iframe = document.getElementById('certificateFrame');
                iframe.srcdoc = certificateDocument(userName, percentage, certId);
                document.getElementById('certificateWrapper').style.display = 'block';
            }

            document.getElementById('quizContent').style.display = 'none';
            document.getElementById('quizResults').style.display = 'block';
            document.getElementById('submitBtn').style.display = 'none';
            document.getElementById('nextBtn').style.display = 'none';
            document.getElementById('prevBtn').style.display = 'none';
            document.getElementById('restartBtn').style.display = 'inline-block';
            document.getElementById('timerDisplay').style.display = 'none';

            document.getElementById('progressBar').style.width = '100%';
            document.getElementById('progressBar').textContent = '100%';
        }

        function certificateDocument(name, score, certId) {
            const date = new Date().toLocaleDateString('en-US', { year: 'numeric', month: 'long', day: 'numeric' });

            let performance = 'Successful Completion';
            let sealColor = '#5B9BD5';

            if (score >= 95) {
                performance = 'Outstanding Achievement';
                sealColor = '#FFD700';
            } else if (score >= 90) {
                performance = 'Excellent Performance';
                sealColor = '#C0C0C0';
            } else if (score >= 80) {
                performance = 'Superior Performance';
                sealColor = '#CD7F32';
            }

            return [
                '<!DOCTYPE html>',
                '<html lang="en">',
                '<head>',
                '<meta charset="UTF-8">',
                '<meta name="viewport" content="width=device-width, initial-scale=1.0">',
                '<title>Certificate - ' + name + '</title>',
                '<style>',
                "@import url('https://fonts.googleapis.com/css2?family=Playfair+Display:wght@700&family=Open+Sans:wght@400;600&display=swap');",
                '* { margin: 0; padding: 0; box-sizing: border-box; }',
                "body { font-family: 'Open Sans', sans-serif; background: linear-gradient(135deg, #5B9BD5 0%, #2C5282 100%); min-height: 100vh; display: flex; justify-content: center; align-items: center; padding: 20px; }",
                '.certificate { max-width: 1100px; width: 95%; min-height: 800px; background: white; border-radius: 20px; box-shadow: 0 30px 60px rgba(0,0,0,0.3); position: relative; padding: 60px; margin: 20px auto; border: 3px solid ' + sealColor + '; }',
                '.header { background: linear-gradient(135deg, #2C5282 0%, #5B9BD5 100%); margin: -60px -60px 40px; padding: 40px; text-align: center; border-radius: 17px 17px 0 0; }',
                '.logo { max-width: 200px; height: auto; margin-bottom: 20px; }',
                "h1 { font-family: 'Playfair Display', serif; font-size: 42px; color: white; text-align: center; margin-bottom: 10px; }",
                ".recipient { font-family: 'Playfair Display', serif; font-size: 56px; color: #2C5282; text-align: center; margin: 40px 0; padding-bottom: 20px; border-bottom: 3px solid " + sealColor + '; }',
                '.details { text-align: center; font-size: 20px; line-height: 2; color: #333; margin: 40px 0; }',
                '.performance { background: ' + sealColor + '; color: white; padding: 15px 40px; border-radius: 30px; display: inline-block; font-weight: bold; font-size: 20px; margin: 20px 0; }',
                '.score { font-size: 60px; color: ' + sealColor + '; font-weight: bold; margin: 20px 0; }',
                '.footer { display: flex; justify-content: space-between; margin-top: 60px; padding-top: 40px; border-top: 2px solid #ddd; }',
                '.signature { text-align: center; flex: 1; }',
                '.signature-line { width: 200px; border-bottom: 2px solid #333; margin: 0 auto 10px; height: 40px; }',
                '.meta { background: #2C5282; color: white; padding: 20px; margin: 60px -60px -60px; border-radius: 0 0 17px 17px; text-align: center; }',
                '@media print { body { background: white; } .certificate { box-shadow: none; } }',
                '</style>',
                '</head>',
                '<body>',
                '<div class="certificate">',
                '<div class="header">',
                '<img src="' + logoData + '" alt="Logo" class="logo">',
                '<h1>Certificate of Achievement</h1>',
                '</div>',
                '<div class="details">This certifies that</div>',
                '<div class="recipient">' + name + '</div>',
                '<div class="details">has successfully completed<br>',
                '<strong>&quot;' + (QUIZ_CONFIG.quizTitle || 'Professional Assessment') + '&quot;</strong><br>',
                '<div class="performance">' + performance + '</div><br>',
                '<div class="score">' + score + '%</div>',
                '</div>',
                '<div class="footer">',
                '<div class="signature"><div class="signature-line"></div><div>' + (QUIZ_CONFIG.author || 'Instructor') + '</div></div>',
                '<div class="signature"><div class="signature-line"></div><div>' + date + '</div></div>',
                '<div class="signature"><div class="signature-line"></div><div>' + (QUIZ_CONFIG.company || 'Issuing Organization') + '</div></div>',
                '</div>',
                '<div class="meta">',
                '<div>' + QUIZ_CONFIG.copyright + '</div>',
                '<div style="margin-top: 10px; font-size: 12px;">Certificate ID: ' + certId + '</div>',
                '</div>',
                '</div>',
                '</body>',
                '</html>'
            ].join('\n');
        }

        function downloadCertificate() {
            const iframe = document.getElementById('certificateFrame');
            const iframeDoc = iframe.contentDocument || iframe.contentWindow.document;
            const certificateHTML = iframeDoc.documentElement.outerHTML;

            const blob = new Blob([certificateHTML], {type: 'text/html;charset=utf-8'});
            const url = URL.createObjectURL(blob);
            const a = document.createElement('a');
            a.href = url;
            a.download = 'certificate_' + Date.now() + '.html';
            document.body.appendChild(a);
            a.click();
            document.body.removeChild(a);
            URL.revokeObjectURL(url);
        }

        function printCertificate() {
            const iframe = document.getElementById('certificateFrame');
            iframe.contentWindow.print();
        }

        function restartQuiz() {
            currentQuestion = 0;
            userAnswers = [];
            timeRemaining = QUIZ_CONFIG.timerMinutes * 60;
            document.getElementById('quizContent').style.display = 'block';
            document.getElementById('quizResults').style.display = 'none';
            document.getElementById('certificateWrapper').style.display = 'none';
            document.getElementById('restartBtn').style.display = 'none';
            startQuiz();
        }
    </script>
</body>
</html>
`
