package k8s

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/validation"
	"k8s.io/client-go/kubernetes"

	"github.com/rhobs/launch-dash/pkg/dataset"
)

// DefaultDatasetKey is the ConfigMap key read when a reference names none.
const DefaultDatasetKey = "spacex_launch_dash.csv"

// ConfigMapRef points at one key of a ConfigMap.
type ConfigMapRef struct {
	Namespace string
	Name      string
	Key       string
}

func (r ConfigMapRef) String() string {
	return r.Namespace + "/" + r.Name + ":" + r.Key
}

// ParseConfigMapRef parses "namespace/name[:key]".
func ParseConfigMapRef(s string) (ConfigMapRef, error) {
	ref, key, hasKey := strings.Cut(s, ":")
	namespace, name, ok := strings.Cut(ref, "/")
	if !ok {
		return ConfigMapRef{}, fmt.Errorf("invalid ConfigMap reference %q: expected namespace/name[:key]", s)
	}

	if errs := validation.IsDNS1123Label(namespace); len(errs) > 0 {
		return ConfigMapRef{}, fmt.Errorf("invalid namespace %q: %s", namespace, strings.Join(errs, "; "))
	}
	if errs := validation.IsDNS1123Subdomain(name); len(errs) > 0 {
		return ConfigMapRef{}, fmt.Errorf("invalid ConfigMap name %q: %s", name, strings.Join(errs, "; "))
	}

	if !hasKey {
		key = DefaultDatasetKey
	}
	if errs := validation.IsConfigMapKey(key); len(errs) > 0 {
		return ConfigMapRef{}, fmt.Errorf("invalid ConfigMap key %q: %s", key, strings.Join(errs, "; "))
	}

	return ConfigMapRef{Namespace: namespace, Name: name, Key: key}, nil
}

// LoadDataset reads launch records from the ConfigMap key named by ref.
// Both data and binaryData are consulted.
func LoadDataset(ctx context.Context, client kubernetes.Interface, ref ConfigMapRef) (*dataset.Dataset, error) {
	cm, err := client.CoreV1().ConfigMaps(ref.Namespace).Get(ctx, ref.Name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get ConfigMap %s/%s: %w", ref.Namespace, ref.Name, err)
	}

	var content string
	if data, ok := cm.Data[ref.Key]; ok {
		content = data
	} else if data, ok := cm.BinaryData[ref.Key]; ok {
		content = string(data)
	} else {
		return nil, fmt.Errorf("ConfigMap %s/%s has no key %q", ref.Namespace, ref.Name, ref.Key)
	}

	ds, err := dataset.Load(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset from %s: %w", ref, err)
	}

	slog.Info("Loaded launch dataset from ConfigMap", "configmap", ref.String(), "records", ds.Len(),
		"payloadMin", ds.PayloadMin, "payloadMax", ds.PayloadMax)
	return ds, nil
}
