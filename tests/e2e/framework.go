//go:build e2e

package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/util/wait"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/portforward"
	"k8s.io/client-go/transport/spdy"

	"github.com/rhobs/launch-dash/pkg/callbacks"
	"github.com/rhobs/launch-dash/pkg/k8s"
	"github.com/rhobs/launch-dash/pkg/layout"
)

const (
	defaultNamespace   = "launch-dash"
	defaultServiceName = "launch-dash"
	defaultServicePort = 8050
	defaultTimeout     = 30 * time.Second
	pollInterval       = 500 * time.Millisecond
)

// TestConfig locates the deployed dashboard and records what its layout
// reports once it is serving.
type TestConfig struct {
	Namespace   string
	ServiceName string
	ServicePort int
	Timeout     time.Duration

	BaseURL string
	// Sites are the dropdown values other than ALL.
	Sites []string
	// PayloadExtent is the initial payload slider value, the dataset's
	// payload min and max.
	PayloadExtent [2]float64

	stopForward chan struct{}
}

// NewTestConfig reads LAUNCH_DASH_NAMESPACE and LAUNCH_DASH_SERVICE over the defaults.
func NewTestConfig() *TestConfig {
	return &TestConfig{
		Namespace:   envOr("LAUNCH_DASH_NAMESPACE", defaultNamespace),
		ServiceName: envOr("LAUNCH_DASH_SERVICE", defaultServiceName),
		ServicePort: defaultServicePort,
		Timeout:     defaultTimeout,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Setup resolves the dashboard URL, port-forwarding when running outside
// the cluster, and waits until the layout is served.
func (c *TestConfig) Setup(ctx context.Context) error {
	switch {
	case os.Getenv("LAUNCH_DASH_URL") != "":
		c.BaseURL = os.Getenv("LAUNCH_DASH_URL")
	case os.Getenv("KUBERNETES_SERVICE_HOST") != "":
		c.BaseURL = fmt.Sprintf("http://%s.%s.svc.cluster.local:%d", c.ServiceName, c.Namespace, c.ServicePort)
	default:
		localPort, err := c.startPortForward(ctx)
		if err != nil {
			return fmt.Errorf("failed to start port-forward: %w", err)
		}
		c.BaseURL = fmt.Sprintf("http://localhost:%d", localPort)
	}
	fmt.Printf("Using launch-dash at %s\n", c.BaseURL)

	if err := c.waitForLayout(ctx); err != nil {
		c.Cleanup()
		return err
	}
	fmt.Printf("launch-dash is serving %d sites, payload %v kg\n", len(c.Sites), c.PayloadExtent)
	return nil
}

// Cleanup stops the port-forward, if any. Safe to call more than once.
func (c *TestConfig) Cleanup() {
	if c.stopForward != nil {
		close(c.stopForward)
		c.stopForward = nil
	}
}

// waitForLayout polls /_dash-layout until it decodes into a tree holding
// the site dropdown and payload slider.
func (c *TestConfig) waitForLayout(ctx context.Context) error {
	var lastErr error
	err := wait.PollUntilContextTimeout(ctx, pollInterval, c.Timeout, true, func(ctx context.Context) (bool, error) {
		if lastErr = c.readLayout(ctx); lastErr != nil {
			fmt.Printf("Layout not ready: %v\n", lastErr)
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return fmt.Errorf("launch-dash layout not ready after %v (last error: %v): %w", c.Timeout, lastErr, err)
	}
	return nil
}

func (c *TestConfig) readLayout(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/_dash-layout", nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("status %d: %s", resp.StatusCode, body)
	}

	var root layout.Component
	if err := json.NewDecoder(resp.Body).Decode(&root); err != nil {
		return fmt.Errorf("failed to decode layout: %w", err)
	}

	slider, ok := root.Find(callbacks.PayloadSliderID)
	if !ok {
		return fmt.Errorf("layout has no %s", callbacks.PayloadSliderID)
	}
	low, high, err := callbacks.RangeValue(slider.Props["value"])
	if err != nil {
		return fmt.Errorf("payload slider value: %w", err)
	}

	dropdown, ok := root.Find(callbacks.SiteDropdownID)
	if !ok {
		return fmt.Errorf("layout has no %s", callbacks.SiteDropdownID)
	}
	options, _ := dropdown.Props["options"].([]any)
	var sites []string
	for _, o := range options {
		opt, _ := o.(map[string]any)
		if v, _ := opt["value"].(string); v != "" && v != callbacks.AllSites {
			sites = append(sites, v)
		}
	}
	if len(sites) == 0 {
		return fmt.Errorf("site dropdown has no sites")
	}

	c.Sites = sites
	c.PayloadExtent = [2]float64{low, high}
	return nil
}

// restConfig prefers the in-cluster service account and falls back to kubeconfig.
func restConfig() (*rest.Config, error) {
	if cfg, err := k8s.GetRESTConfig(k8s.AuthModeServiceAccount); err == nil {
		return cfg, nil
	}
	return k8s.GetRESTConfig(k8s.AuthModeKubeConfig)
}

// startPortForward forwards a free local port to a running pod behind the
// launch-dash Service and returns the local port.
func (c *TestConfig) startPortForward(ctx context.Context) (int, error) {
	cfg, err := restConfig()
	if err != nil {
		return 0, fmt.Errorf("failed to get kube config: %w", err)
	}
	clientset, err := kubernetes.NewForConfig(cfg)
	if err != nil {
		return 0, fmt.Errorf("failed to create kubernetes client: %w", err)
	}

	pod, err := c.servicePod(ctx, clientset)
	if err != nil {
		return 0, err
	}

	reqURL, err := url.Parse(fmt.Sprintf("%s/api/v1/namespaces/%s/pods/%s/portforward", cfg.Host, c.Namespace, pod))
	if err != nil {
		return 0, fmt.Errorf("failed to parse URL: %w", err)
	}
	transport, upgrader, err := spdy.RoundTripperFor(cfg)
	if err != nil {
		return 0, fmt.Errorf("failed to create round tripper: %w", err)
	}
	dialer := spdy.NewDialer(upgrader, &http.Client{Transport: transport}, http.MethodPost, reqURL)

	stop := make(chan struct{})
	ready := make(chan struct{})
	// Local port 0 lets the forwarder pick a free port.
	pf, err := portforward.New(dialer, []string{fmt.Sprintf("0:%d", c.ServicePort)}, stop, ready, io.Discard, os.Stderr)
	if err != nil {
		return 0, fmt.Errorf("failed to create port forwarder: %w", err)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- pf.ForwardPorts() }()

	select {
	case <-ready:
	case err := <-errCh:
		return 0, fmt.Errorf("port-forward to %s failed: %w", pod, err)
	case <-ctx.Done():
		close(stop)
		return 0, ctx.Err()
	case <-time.After(c.Timeout):
		close(stop)
		return 0, fmt.Errorf("timeout (%v) waiting for port-forward to %s", c.Timeout, pod)
	}

	ports, err := pf.GetPorts()
	if err != nil || len(ports) == 0 {
		close(stop)
		return 0, fmt.Errorf("port-forward to %s reported no ports: %v", pod, err)
	}
	c.stopForward = stop
	fmt.Printf("Port-forward established: localhost:%d -> %s:%d\n", ports[0].Local, pod, c.ServicePort)
	return int(ports[0].Local), nil
}

// servicePod returns a running pod selected by the launch-dash Service.
func (c *TestConfig) servicePod(ctx context.Context, clientset kubernetes.Interface) (string, error) {
	svc, err := clientset.CoreV1().Services(c.Namespace).Get(ctx, c.ServiceName, metav1.GetOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to get service %s/%s: %w", c.Namespace, c.ServiceName, err)
	}
	if len(svc.Spec.Selector) == 0 {
		return "", fmt.Errorf("service %s/%s has no pod selector", c.Namespace, c.ServiceName)
	}

	pods, err := clientset.CoreV1().Pods(c.Namespace).List(ctx, metav1.ListOptions{
		LabelSelector: labels.SelectorFromSet(svc.Spec.Selector).String(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to list pods: %w", err)
	}
	for _, pod := range pods.Items {
		if pod.Status.Phase == corev1.PodRunning {
			return pod.Name, nil
		}
	}
	return "", fmt.Errorf("no running pods behind service %s/%s", c.Namespace, c.ServiceName)
}
