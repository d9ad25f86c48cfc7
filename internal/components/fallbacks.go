package components

import (
	"fmt"

	"sitesmith/internal/spec"
)

// FallbackComponent returns the static body for a section kind. Kinds
// without a handwritten fallback get the minimal placeholder.
func FallbackComponent(kind spec.Kind) string {
	if body, ok := fallbackBodies[kind]; ok {
		return body
	}
	return MinimalComponent(kind)
}

// MinimalComponent is the placeholder of last resort. Header and Footer
// variants import the router link primitive so navigation can be added by
// hand without touching imports.
func MinimalComponent(kind spec.Kind) string {
	routerImport := ""
	if kind == spec.KindHeader || kind == spec.KindFooter {
		routerImport = "import { Link } from 'react-router-dom';\n"
	}
	return fmt.Sprintf(`import React from 'react';
%[1]s
export default function %[2]s() {
  return (
    <section className="py-12 px-4 bg-background">
      <div className="max-w-4xl mx-auto text-center">
        <h2 className="text-3xl font-bold mb-6 text-foreground">%[2]s Section</h2>
        <p className="text-sm text-gray-600">This is a placeholder for the %[2]s component.</p>
      </div>
    </section>
  );
}`, routerImport, kind)
}

var fallbackBodies = map[spec.Kind]string{
	spec.KindHero: `import React from 'react';

export default function Hero() {
  return (
    <section className="min-h-screen flex items-center justify-center bg-gradient-to-r from-primary to-blue-600 text-white">
      <div className="text-center px-4">
        <h1 className="text-5xl font-bold font-heading mb-6">Welcome to Our Website</h1>
        <p className="text-xl mb-8 font-body max-w-2xl">
          Discover amazing features and services that will transform your experience
        </p>
        <button className="bg-white text-primary px-8 py-3 rounded-lg font-semibold hover:bg-gray-100 transition">
          Get Started
        </button>
      </div>
    </section>
  );
}`,

	spec.KindFeatureGrid: `import React from 'react';

export default function FeatureGrid() {
  const features = [
    { title: "Fast & Reliable", description: "Lightning-fast performance you can count on", icon: "Lightning" },
    { title: "Secure", description: "Enterprise-grade security for your peace of mind", icon: "Security" },
    { title: "Easy to Use", description: "Intuitive interface designed for everyone", icon: "Target" },
    { title: "24/7 Support", description: "Round-the-clock assistance when you need it", icon: "Support" }
  ];

  return (
    <section className="py-20 px-4 bg-background">
      <div className="max-w-6xl mx-auto">
        <h2 className="text-4xl font-bold font-heading text-center mb-16 text-foreground">
          Why Choose Us
        </h2>
        <div className="grid md:grid-cols-2 lg:grid-cols-4 gap-8">
          {features.map((feature, index) => (
            <div key={index} className="text-center p-6 rounded-lg hover:shadow-lg transition">
              <div className="text-2xl font-bold mb-4 text-primary">{feature.icon}</div>
              <h3 className="text-xl font-semibold font-heading mb-3 text-foreground">
                {feature.title}
              </h3>
              <p className="font-body text-gray-600">{feature.description}</p>
            </div>
          ))}
        </div>
      </div>
    </section>
  );
}`,

	spec.KindContactForm: `import React from 'react';

export default function ContactForm() {
  return (
    <section className="py-20 px-4 bg-gray-50">
      <div className="max-w-2xl mx-auto">
        <h2 className="text-4xl font-bold font-heading text-center mb-16 text-foreground">
          Get In Touch
        </h2>
        <form className="bg-white p-8 rounded-lg shadow-lg">
          <div className="mb-6">
            <label className="block text-sm font-semibold mb-2 text-foreground">Name</label>
            <input
              type="text"
              className="w-full px-4 py-2 border border-gray-300 rounded-lg focus:outline-none focus:border-primary"
              placeholder="Your Name"
            />
          </div>
          <div className="mb-6">
            <label className="block text-sm font-semibold mb-2 text-foreground">Email</label>
            <input
              type="email"
              className="w-full px-4 py-2 border border-gray-300 rounded-lg focus:outline-none focus:border-primary"
              placeholder="your@email.com"
            />
          </div>
          <div className="mb-6">
            <label className="block text-sm font-semibold mb-2 text-foreground">Message</label>
            <textarea
              rows="4"
              className="w-full px-4 py-2 border border-gray-300 rounded-lg focus:outline-none focus:border-primary"
              placeholder="Your message..."
            ></textarea>
          </div>
          <button
            type="submit"
            className="w-full bg-primary text-white py-3 rounded-lg font-semibold hover:bg-blue-700 transition"
          >
            Send Message
          </button>
        </form>
      </div>
    </section>
  );
}`,

	spec.KindProductGrid: `import React from 'react';

export default function ProductGrid() {
  const products = [
    { title: "Product 1", description: "Amazing product description", price: "$99" },
    { title: "Product 2", description: "Another great product", price: "$149" },
    { title: "Product 3", description: "Premium product option", price: "$199" },
    { title: "Product 4", description: "Budget-friendly choice", price: "$49" },
    { title: "Product 5", description: "Professional solution", price: "$299" },
    { title: "Product 6", description: "Enterprise package", price: "$499" }
  ];

  return (
    <section className="py-20 px-4 bg-background">
      <div className="max-w-6xl mx-auto">
        <h2 className="text-4xl font-bold font-heading text-center mb-16 text-foreground">
          Our Products
        </h2>
        <div className="grid md:grid-cols-2 lg:grid-cols-3 gap-8">
          {products.map((product, index) => (
            <div key={index} className="bg-white p-6 rounded-lg shadow-lg hover:shadow-xl transition">
              <div className="h-48 bg-gray-200 rounded-lg mb-4"></div>
              <h3 className="text-xl font-semibold font-heading mb-3 text-foreground">
                {product.title}
              </h3>
              <p className="font-body text-gray-600 mb-4">{product.description}</p>
              <div className="flex justify-between items-center">
                <span className="text-2xl font-bold text-primary">{product.price}</span>
                <button className="bg-primary text-white px-4 py-2 rounded-lg hover:bg-blue-700 transition">
                  Buy Now
                </button>
              </div>
            </div>
          ))}
        </div>
      </div>
    </section>
  );
}`,

	spec.KindTestimonials: `import React from 'react';

export default function Testimonials() {
  const testimonials = [
    { quote: "Absolutely amazing service!", author: "John Doe", title: "CEO, Company Inc" },
    { quote: "Exceeded all expectations.", author: "Jane Smith", title: "Marketing Director" },
    { quote: "Highly recommend to everyone!", author: "Mike Johnson", title: "Freelancer" }
  ];

  return (
    <section className="py-20 px-4 bg-gray-50">
      <div className="max-w-6xl mx-auto">
        <h2 className="text-4xl font-bold font-heading text-center mb-16 text-foreground">
          What Our Clients Say
        </h2>
        <div className="grid md:grid-cols-3 gap-8">
          {testimonials.map((testimonial, index) => (
            <div key={index} className="bg-white p-6 rounded-lg shadow-lg">
              <div className="text-yellow-400 mb-4">★★★★★</div>
              <p className="font-body text-gray-600 mb-4 italic">"{testimonial.quote}"</p>
              <div>
                <div className="font-semibold text-foreground">{testimonial.author}</div>
                <div className="text-sm text-gray-500">{testimonial.title}</div>
              </div>
            </div>
          ))}
        </div>
      </div>
    </section>
  );
}`,

	spec.KindPricing: `import React from 'react';

export default function Pricing() {
  const plans = [
    { name: "Basic", price: "$9", features: ["Feature 1", "Feature 2", "Feature 3"] },
    { name: "Pro", price: "$19", features: ["Everything in Basic", "Feature 4", "Feature 5"], popular: true },
    { name: "Enterprise", price: "$39", features: ["Everything in Pro", "Feature 6", "Feature 7"] }
  ];

  return (
    <section className="py-20 px-4 bg-background">
      <div className="max-w-6xl mx-auto">
        <h2 className="text-4xl font-bold font-heading text-center mb-16 text-foreground">
          Choose Your Plan
        </h2>
        <div className="grid md:grid-cols-3 gap-8">
          {plans.map((plan, index) => (
            <div key={index} className={` + "`" + `bg-white p-8 rounded-lg shadow-lg ${plan.popular ? 'ring-2 ring-primary' : ''}` + "`" + `}>
              {plan.popular && (
                <div className="bg-primary text-white px-3 py-1 rounded-full text-sm mb-4 inline-block">
                  Most Popular
                </div>
              )}
              <h3 className="text-2xl font-bold font-heading mb-4 text-foreground">{plan.name}</h3>
              <div className="text-4xl font-bold text-primary mb-6">{plan.price}<span className="text-lg text-gray-500">/mo</span></div>
              <ul className="space-y-3 mb-8">
                {plan.features.map((feature, i) => (
                  <li key={i} className="flex items-center font-body text-gray-600">
                    <span className="text-green-500 mr-3">✓</span>
                    {feature}
                  </li>
                ))}
              </ul>
              <button className="w-full bg-primary text-white py-3 rounded-lg font-semibold hover:bg-blue-700 transition">
                Get Started
              </button>
            </div>
          ))}
        </div>
      </div>
    </section>
  );
}`,

	spec.KindFAQ: `import React from 'react';

export default function FAQ() {
  const faqs = [
    { question: "What is your service about?", answer: "We provide amazing solutions for your business needs." },
    { question: "How much does it cost?", answer: "We offer flexible pricing plans to suit different budgets." },
    { question: "Is there a free trial?", answer: "Yes, we offer a 14-day free trial with full features." },
    { question: "How do I get started?", answer: "Simply sign up and follow our quick setup guide." },
    { question: "Do you offer support?", answer: "We provide 24/7 customer support via chat and email." },
    { question: "Can I cancel anytime?", answer: "Yes, you can cancel your subscription at any time." }
  ];

  return (
    <section className="py-20 px-4 bg-gray-50">
      <div className="max-w-4xl mx-auto">
        <h2 className="text-4xl font-bold font-heading text-center mb-16 text-foreground">
          Frequently Asked Questions
        </h2>
        <div className="space-y-4">
          {faqs.map((faq, index) => (
            <details key={index} className="bg-white p-6 rounded-lg shadow">
              <summary className="font-semibold font-heading text-foreground cursor-pointer">
                {faq.question}
              </summary>
              <p className="mt-4 font-body text-gray-600">{faq.answer}</p>
            </details>
          ))}
        </div>
      </div>
    </section>
  );
}`,

	spec.KindRichText: `import React from 'react';

export default function RichText() {
  return (
    <section className="py-20 px-4 bg-background">
      <div className="max-w-4xl mx-auto">
        <h2 className="text-4xl font-bold font-heading mb-8 text-foreground">
          About Our Company
        </h2>
        <div className="prose prose-lg max-w-none">
          <p className="font-body text-gray-600 mb-6">
            We are a leading company dedicated to providing exceptional services and solutions
            to our clients worldwide. Our team of experts works tirelessly to ensure your
            success and satisfaction.
          </p>
          <h3 className="text-2xl font-semibold font-heading mb-4 text-foreground">Our Mission</h3>
          <p className="font-body text-gray-600 mb-6">
            To deliver innovative solutions that empower businesses and individuals to achieve
            their goals while maintaining the highest standards of quality and service.
          </p>
          <h3 className="text-2xl font-semibold font-heading mb-4 text-foreground">Our Values</h3>
          <ul className="font-body text-gray-600 space-y-2">
            <li>• Excellence in everything we do</li>
            <li>• Innovation and continuous improvement</li>
            <li>• Customer satisfaction as our priority</li>
            <li>• Integrity and transparency in our operations</li>
          </ul>
        </div>
      </div>
    </section>
  );
}`,

	spec.KindCTA: `import React from 'react';

export default function CTA() {
  return (
    <section className="py-20 px-4 bg-primary text-white">
      <div className="max-w-4xl mx-auto text-center">
        <h2 className="text-4xl font-bold font-heading mb-6">
          Ready to Get Started?
        </h2>
        <p className="text-xl font-body mb-8 opacity-90">
          Join thousands of satisfied customers who trust our services.
          Start your journey today and experience the difference.
        </p>
        <button className="bg-white text-primary px-8 py-4 rounded-lg font-semibold text-lg hover:bg-gray-100 transition">
          Start Free Trial
        </button>
      </div>
    </section>
  );
}`,
}
