// Command quizforge converts quiz files between the registered formats from
// the command line:
//
//	quizforge -in questions.csv -out quiz.html
//	quizforge -sample safety -out safety.html -timer 15
//	quizforge -certificate -recipient "Jane Doe" -title "CNC Basics" -score 92
//
// Source and target formats are detected from file extensions and can be
// forced with -from/-to.
package main

import (
	"bytes"
	"encoding/base64"
	"flag"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/quizforge/quizforge/internal/cert"
	"github.com/quizforge/quizforge/internal/format"
	"github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/settings"
)

func main() {
	var (
		in          = flag.String("in", "", "Path to the quiz file to convert")
		out         = flag.String("out", "", "Path to the output file (default: input name with the target extension)")
		from        = flag.String("from", "", "Source format name (default: detect from -in extension)")
		to          = flag.String("to", "", "Target format name (default: detect from -out extension, else html)")
		title       = flag.String("title", "", "Override the quiz title")
		description = flag.String("description", "", "Override the quiz description")
		settingsFl  = flag.String("settings", "quiz_settings.json", "Path to the presentation settings file")
		sample      = flag.String("sample", "", "Start from a built-in sample quiz instead of -in")
		listSamples = flag.Bool("list-samples", false, "List the built-in sample quizzes and exit")
		listFormats = flag.Bool("list-formats", false, "List the registered formats and exit")
		summary     = flag.Bool("summary", false, "Print the parse report")
		logoPath    = flag.String("logo", "", "Path to a logo image embedded in HTML output")

		author     = flag.String("author", "", "Quiz author shown in exports")
		company    = flag.String("company", "", "Organization shown in exports")
		copyright_ = flag.String("copyright", "", "Copyright line shown in exports")
		timer      = flag.Int("timer", 0, "Time limit in minutes (0 disables the timer)")
		threshold  = flag.Int("threshold", 70, "Pass threshold percentage")
		randomize  = flag.Bool("randomize", false, "Shuffle question order in HTML output")
		results    = flag.Bool("results", true, "Show per-question results in HTML output")
		explain    = flag.Bool("explanations", true, "Show explanations in HTML output")
		review     = flag.Bool("review", true, "Allow answer review before submitting")
		offerCert  = flag.Bool("offer-certificate", false, "Offer a certificate on passing in HTML output")

		issueCert  = flag.Bool("certificate", false, "Issue a certificate instead of converting a quiz")
		recipient  = flag.String("recipient", "", "Certificate recipient name")
		score      = flag.Int("score", -1, "Certificate score (0-100)")
		instructor = flag.String("instructor", "", "Instructor name on the certificate")
	)
	flag.Parse()

	if *listSamples {
		for _, n := range quiz.SampleNames() {
			q, _ := quiz.Sample(n)
			fmt.Printf("%s (%d questions)\n", n, q.Count())
		}
		return
	}
	if *listFormats {
		for _, n := range format.Names() {
			c, _ := format.Lookup(n)
			var dirs []string
			if c.CanParse() {
				dirs = append(dirs, "parse")
			}
			if c.CanExport() {
				dirs = append(dirs, "export")
			}
			fmt.Printf("%-10s %-14s %s\n", n, strings.Join(dirs, ","), strings.Join(c.Exts, " "))
		}
		return
	}

	// Flags left at their defaults must not override the settings file, so
	// record which ones the user actually passed.
	seen := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { seen[f.Name] = true })

	s, err := settings.Load(*settingsFl)
	if err != nil {
		fatalf("settings: %v", err)
	}

	if *issueCert {
		runCertificate(s, seen, *recipient, *title, *score, *instructor, *company, *copyright_, *logoPath, *out)
		return
	}

	qz, report, err := loadQuiz(*in, *sample, *from)
	if err != nil {
		fatalf("%v", err)
	}
	if *title != "" {
		qz.Title = *title
	}
	if *description != "" {
		qz.Description = *description
	}

	outPath := *out
	if outPath == "" {
		base := *sample
		if *in != "" {
			base = strings.TrimSuffix(filepath.Base(*in), filepath.Ext(*in))
		}
		outPath = base + ".html"
	}
	toName := *to
	if toName == "" {
		if c, ok := format.Detect(outPath); ok {
			toName = c.Name
		} else {
			toName = "html"
		}
	}
	dst, ok := format.Lookup(toName)
	if !ok {
		fatalf("unknown target format: %s", toName)
	}

	pres := s.Presentation()
	if *author != "" {
		pres.Author = *author
	}
	if *company != "" {
		pres.Company = *company
	}
	if *copyright_ != "" {
		pres.Copyright = *copyright_
	}
	if seen["timer"] {
		pres.TimerMinutes = *timer
	}
	if seen["threshold"] {
		pres.PassThreshold = *threshold
	}
	if seen["randomize"] {
		pres.Randomize = *randomize
	}
	if seen["results"] {
		pres.ShowResults = *results
	}
	if seen["explanations"] {
		pres.ShowExplanations = *explain
	}
	if seen["review"] {
		pres.AllowReview = *review
	}
	if seen["offer-certificate"] {
		pres.EnableCertificate = *offerCert
	}
	if *logoPath != "" {
		uri, err := fileDataURI(*logoPath)
		if err != nil {
			fatalf("logo: %v", err)
		}
		pres.LogoDataURI = uri
	}

	var buf bytes.Buffer
	if err := dst.Encode(&buf, qz, pres); err != nil {
		fatalf("export %s: %v", toName, err)
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		fatalf("write output: %v", err)
	}

	fmt.Printf("Wrote %d questions to %s\n", qz.Count(), outPath)
	if *summary && report != "" {
		fmt.Println(report)
	}
}

// loadQuiz builds the working quiz from exactly one source: a built-in
// sample or an input file.
func loadQuiz(in, sample, from string) (*quiz.Quiz, string, error) {
	if sample != "" && in != "" {
		return nil, "", fmt.Errorf("use -in or -sample, not both")
	}
	if sample != "" {
		qz, ok := quiz.Sample(sample)
		if !ok {
			return nil, "", fmt.Errorf("unknown sample %q (try -list-samples)", sample)
		}
		return qz, fmt.Sprintf("loaded %d questions from sample %q", qz.Count(), sample), nil
	}
	if in == "" {
		return nil, "", fmt.Errorf("input file required (use -in, or -sample for a built-in quiz)")
	}

	if from == "" {
		c, ok := format.Detect(in)
		if !ok {
			return nil, "", fmt.Errorf("cannot detect format of %s, pass -from", in)
		}
		from = c.Name
	}
	src, ok := format.Lookup(from)
	if !ok {
		return nil, "", fmt.Errorf("unknown source format: %s", from)
	}

	f, err := os.Open(in)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	frag, err := src.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("parse %s: %w", in, err)
	}

	qz := quiz.New()
	if frag.Title != "" {
		qz.Title = frag.Title
	}
	if frag.Description != "" {
		qz.Description = frag.Description
	}
	_, rejected := qz.Append(frag.Questions)

	report := frag.Summary()
	if rejected > 0 {
		report += fmt.Sprintf("; %d rejected", rejected)
	}
	return qz, report, nil
}

func runCertificate(s settings.Settings, seen map[string]bool, recipient, title string, score int, instructor, company, copyright, logoPath, out string) {
	if recipient == "" {
		fatalf("-recipient required")
	}
	if score < 0 || score > 100 {
		fatalf("-score must be 0-100")
	}
	if title == "" {
		title = "Professional Assessment"
	}
	if company == "" {
		company = s.CompanyName
	}
	// the settings author signs when no -instructor is given; RenderHTML
	// keeps the neutral fallback when both are empty
	if instructor == "" {
		instructor = s.Author
	}

	c, err := cert.New(recipient, title, score)
	if err != nil {
		fatalf("issue certificate: %v", err)
	}

	opts := cert.RenderOptions{Instructor: instructor, Company: company}
	if seen["copyright"] || s.Copyright != "" {
		opts.Copyright = copyright
		if opts.Copyright == "" {
			opts.Copyright = s.Copyright
		}
	}
	if logoPath != "" {
		uri, err := fileDataURI(logoPath)
		if err != nil {
			fatalf("logo: %v", err)
		}
		opts.LogoDataURI = uri
	}

	if out == "" {
		out = "certificate.html"
	}
	var buf bytes.Buffer
	if err := cert.RenderHTML(&buf, c, opts); err != nil {
		fatalf("render certificate: %v", err)
	}
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		fatalf("write certificate: %v", err)
	}
	fmt.Printf("Issued certificate %s (%s) to %s\n", c.ID, c.Performance, out)
}

// fileDataURI inlines a small image file as a data: URI.
func fileDataURI(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	mt := mime.TypeByExtension(filepath.Ext(path))
	if mt == "" {
		mt = "application/octet-stream"
	}
	return "data:" + mt + ";base64," + base64.StdEncoding.EncodeToString(b), nil
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
