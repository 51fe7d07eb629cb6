package k8s

import (
	"fmt"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

// AuthMode selects how the Kubernetes client authenticates.
type AuthMode string

const (
	AuthModeKubeConfig     AuthMode = "kubeconfig"
	AuthModeServiceAccount AuthMode = "serviceaccount"
)

// ParseAuthMode validates and converts a string to AuthMode
func ParseAuthMode(mode string) (AuthMode, error) {
	switch mode {
	case "", string(AuthModeKubeConfig):
		return AuthModeKubeConfig, nil
	case string(AuthModeServiceAccount):
		return AuthModeServiceAccount, nil
	default:
		return "", fmt.Errorf("invalid auth mode: %s (valid options: kubeconfig, serviceaccount)", mode)
	}
}

// GetClientConfig returns a Kubernetes REST config using kubeconfig
func GetClientConfig() (*rest.Config, error) {
	loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
	configOverrides := &clientcmd.ConfigOverrides{}
	kubeConfig := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(loadingRules, configOverrides)

	config, err := kubeConfig.ClientConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load kubeconfig: %w", err)
	}

	return config, nil
}

// GetRESTConfig returns the REST config for the given auth mode.
func GetRESTConfig(mode AuthMode) (*rest.Config, error) {
	switch mode {
	case AuthModeServiceAccount:
		config, err := rest.InClusterConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load in-cluster config: %w", err)
		}
		return config, nil
	default:
		return GetClientConfig()
	}
}

// GetKubeClient returns a Kubernetes client
func GetKubeClient(mode AuthMode) (*kubernetes.Clientset, error) {
	config, err := GetRESTConfig(mode)
	if err != nil {
		return nil, err
	}

	clientset, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}

	return clientset, nil
}
