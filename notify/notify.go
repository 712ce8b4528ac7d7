// SPDX-License-Identifier: GPL-3.0-or-later
package notify

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/CrawX/go-inbox-sentinel/log"
	"github.com/CrawX/go-inbox-sentinel/mail"

	"github.com/sirupsen/logrus"
)

const (
	maxTitle    = 80
	maxSubtitle = 120
	maxMessage  = 200
)

// Desktop delivers notifications through whatever the platform offers:
// terminal-notifier or osascript on macOS, notify-send elsewhere. Delivery
// is best-effort, failures are logged at debug level and swallowed.
type Desktop struct {
	l *logrus.Logger
}

func NewDesktop() *Desktop {
	return &Desktop{l: log.Logger(log.LOG_NOTIFY)}
}

func (d *Desktop) Notify(title, subtitle, message, url string) {
	title = mail.Truncate(title, maxTitle)
	subtitle = mail.Truncate(subtitle, maxSubtitle)
	message = mail.Truncate(message, maxMessage)

	var err error
	if runtime.GOOS == "darwin" {
		err = d.notifyDarwin(title, subtitle, message, url)
	} else {
		err = d.notifyFreedesktop(title, subtitle, message)
	}

	if err != nil {
		d.l.WithField("error", err).Debug("Could not deliver notification")
	}
}

func (d *Desktop) notifyDarwin(title, subtitle, message, url string) error {
	if _, err := exec.LookPath("terminal-notifier"); err == nil {
		args := []string{"-title", title, "-sound", "default"}
		if subtitle != "" {
			args = append(args, "-subtitle", subtitle)
		}
		if message != "" {
			args = append(args, "-message", message)
		}
		if url != "" {
			args = append(args, "-open", url)
		}
		return exec.Command("terminal-notifier", args...).Run()
	}

	// osascript has no deep-link support, the url is dropped.
	script := fmt.Sprintf("display notification %q with title %q", message, title)
	if subtitle != "" {
		script += fmt.Sprintf(" subtitle %q", subtitle)
	}
	return exec.Command("osascript", "-e", script).Run()
}

func (d *Desktop) notifyFreedesktop(title, subtitle, message string) error {
	body := message
	if subtitle != "" {
		body = strings.TrimSpace(subtitle + "\n" + message)
	}
	return exec.Command("notify-send", title, body).Run()
}
