// Package templates provides the embedded client-side script generators
package templates

import (
	"strconv"
	"strings"

	"github.com/AtRiskMedia/pagecraft-go/config"
)

// contactFormJS is the client-side submission behavior. It is embedded
// verbatim into every generated page. Two independent pieces: the submit
// interceptor, and an on-load pass that injects the hidden site-identifier
// field into any wired form missing it. The site identifier falls back to the
// last non-empty segment of the page URL so pages served under /sites/{id}
// work without server-side stamping.
const contactFormJS = `
(function () {
  function deriveSiteId() {
    var segments = window.location.pathname.split('/').filter(function (s) { return s.length > 0; });
    return segments.length > 0 ? segments[segments.length - 1] : 'unknown';
  }

  function labelFor(form, el) {
    if (el.id) {
      var label = form.querySelector('label[for="' + el.id + '"]');
      if (label && label.textContent.trim()) return label.textContent.trim();
    }
    return el.name || el.id || 'field';
  }

  function handleSubmit(event) {
    event.preventDefault();
    var form = event.target;
    var button = form.querySelector('button[type="submit"]');
    var originalLabel = button ? button.textContent : '';
    if (button) {
      button.disabled = true;
      button.textContent = 'Sending...';
    }

    var formData = {};
    var controls = form.querySelectorAll('input, textarea, select');
    for (var i = 0; i < controls.length; i++) {
      var el = controls[i];
      if (el.type === 'hidden' || !el.name) continue;
      formData[labelFor(form, el)] = el.value;
    }

    var siteField = form.querySelector('input[name="site-id"]');
    var siteId = (siteField && siteField.value) ? siteField.value : deriveSiteId();

    fetch('{{ENDPOINT}}', {
      method: 'POST',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify({ siteIdentifier: siteId, formData: formData })
    })
      .then(function (res) {
        return res.json().catch(function () { return {}; }).then(function (body) {
          if (res.ok) {
            form.reset();
            alert(body.message || 'Thanks! Your message has been sent.');
          } else {
            alert(body.error || body.message || 'Something went wrong. Please try again.');
          }
        });
      })
      .catch(function () {
        alert('Could not send your message. Please check your connection and try again.');
      })
      .finally(function () {
        if (button) {
          button.disabled = false;
          button.textContent = originalLabel;
        }
      });
  }

  function init() {
    var forms = document.querySelectorAll('form[data-contact-form]');
    for (var i = 0; i < forms.length; i++) {
      var form = forms[i];
      form.addEventListener('submit', handleSubmit);
      if (!form.querySelector('input[name="site-id"]')) {
        var hidden = document.createElement('input');
        hidden.type = 'hidden';
        hidden.name = 'site-id';
        hidden.value = deriveSiteId();
        form.insertBefore(hidden, form.firstChild);
      }
    }
  }

  if (document.readyState === 'loading') {
    document.addEventListener('DOMContentLoaded', init);
  } else {
    init();
  }
})();
`

// ContactFormScript returns the submission script markup. Output depends only
// on configuration, never on page content.
func ContactFormScript() string {
	js := strings.ReplaceAll(contactFormJS, "{{ENDPOINT}}", config.SubmissionEndpoint)
	return "<script>" + js + "</script>"
}

// countdownJS re-renders the remaining time against the deadline carried on
// the #countdown anchor's data-event-date attribute. An absent or unparsable
// date falls back to now plus {{FALLBACK_DAYS}} days at 18:00 local.
const countdownJS = `
(function () {
  var el = document.getElementById('countdown');
  if (!el) return;

  var deadline = new Date(el.getAttribute('data-event-date') || '');
  if (isNaN(deadline.getTime())) {
    deadline = new Date();
    deadline.setDate(deadline.getDate() + {{FALLBACK_DAYS}});
    deadline.setHours(18, 0, 0, 0);
  }

  function pad(n) {
    return n < 10 ? '0' + n : '' + n;
  }

  var timer = null;
  function tick() {
    var diff = deadline.getTime() - Date.now();
    if (diff <= 0) {
      el.textContent = 'We are LIVE!';
      if (timer) clearInterval(timer);
      return;
    }
    var days = Math.floor(diff / 86400000);
    var hours = Math.floor(diff / 3600000) % 24;
    var minutes = Math.floor(diff / 60000) % 60;
    el.textContent = pad(days) + 'd ' + pad(hours) + 'h ' + pad(minutes) + 'm';
  }

  tick();
  timer = setInterval(tick, 60000);
})();
`

// CountdownScript returns the countdown widget script markup
func CountdownScript(fallbackDays int) string {
	js := strings.ReplaceAll(countdownJS, "{{FALLBACK_DAYS}}", strconv.Itoa(fallbackDays))
	return "<script>" + js + "</script>"
}
