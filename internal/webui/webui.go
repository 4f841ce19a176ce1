// Package webui serves the HTML side of the dashboard: the interactive page,
// standalone chart pages and a debug dump of the loaded dataset.
package webui

import (
	"net/url"
	"strings"

	"github.com/launchrecords/launchdash/internal/app"
)

type WebUI struct {
	*app.Application
}

func NewWebUI(app *app.Application) *WebUI {
	return &WebUI{Application: app}
}

// echartsScript is the URL of echarts.min.js under the configured assets host.
func (webUI *WebUI) echartsScript() string {
	host := webUI.Renderer.AssetsHost
	if host == "" {
		host = defaultAssetsHost
	}
	if !strings.HasSuffix(host, "/") {
		host += "/"
	}
	return host + "echarts.min.js"
}

// pagePolicy is the Content-Security-Policy for pages that run ECharts. The
// assets origin is allowed when the script is served from another host.
func (webUI *WebUI) pagePolicy() string {
	scriptSrc := "'self' 'unsafe-inline'"
	if u, err := url.Parse(webUI.echartsScript()); err == nil && u.Host != "" {
		scriptSrc += " " + u.Scheme + "://" + u.Host
	}
	return "default-src 'self'; script-src " + scriptSrc +
		"; style-src 'self' 'unsafe-inline'; img-src 'self' data:; connect-src 'self'; frame-ancestors 'none';"
}

const defaultAssetsHost = "https://go-echarts.github.io/go-echarts-assets/assets/"
